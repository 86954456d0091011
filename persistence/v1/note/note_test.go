package note

import (
	"context"
	"fmt"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/ribgsilva/simple-notes/platform/testsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func freezeClock(t *testing.T, at time.Time) {
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestInsertAndFind(t *testing.T) {
	testsys.Setup(t, false)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "groceries", Content: "milk"})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, time.UTC, created.CreatedAt.Location())

	found, err := Find(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestFindMissing(t *testing.T) {
	testsys.Setup(t, false)

	_, err := Find(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	testsys.Setup(t, false)
	ctx := context.Background()

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	freezeClock(t, at)

	created, err := Insert(ctx, NewNote{Title: "a", Content: "b"})
	require.NoError(t, err)

	// clock did not move, updated_at still has to advance
	updated, err := Update(ctx, created.Id, UpdateNote{Title: "c", Content: ""})
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	found, err := Find(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, updated, found)

	freezeClock(t, at.Add(time.Hour))
	again, err := Update(ctx, created.Id, UpdateNote{Title: "d", Content: "e"})
	require.NoError(t, err)
	assert.Equal(t, at.Add(time.Hour), again.UpdatedAt)
}

func TestUpdateMissing(t *testing.T) {
	testsys.Setup(t, false)

	_, err := Update(context.Background(), 7, UpdateNote{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	testsys.Setup(t, false)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "a", Content: "b"})
	require.NoError(t, err)

	require.NoError(t, Delete(ctx, created.Id))

	_, err = Find(ctx, created.Id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, Delete(ctx, created.Id), ErrNotFound)
}

func TestListOrdersByRecency(t *testing.T) {
	testsys.Setup(t, false)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]uint64, 0, 3)
	for i := 0; i < 3; i++ {
		freezeClock(t, base.Add(time.Duration(i)*time.Minute))
		n, err := Insert(ctx, NewNote{Title: fmt.Sprintf("n%d", i), Content: "c"})
		require.NoError(t, err)
		ids = append(ids, n.Id)
	}

	// touching the oldest moves it to the front
	freezeClock(t, base.Add(time.Hour))
	_, err := Update(ctx, ids[0], UpdateNote{Title: "n0", Content: "edited"})
	require.NoError(t, err)

	notes, err := List(ctx)
	require.NoError(t, err)
	got := make([]uint64, 0, len(notes))
	for _, n := range notes {
		got = append(got, n.Id)
	}
	assert.Equal(t, []uint64{ids[0], ids[2], ids[1]}, got)
}

func TestListEmpty(t *testing.T) {
	testsys.Setup(t, false)

	notes, err := List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestFindUsesCache(t *testing.T) {
	s := testsys.Setup(t, true)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "cached", Content: "body"})
	require.NoError(t, err)
	key := fmt.Sprintf(noteKey, created.Id)

	_, err = Find(ctx, created.Id)
	require.NoError(t, err)
	require.True(t, s.Exists(key), "note should be cached after find")
	assert.Equal(t, formatTime(created.UpdatedAt), s.HGet(key, versionField))

	found, err := Find(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	updated, err := Update(ctx, created.Id, UpdateNote{Title: "changed", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, formatTime(updated.UpdatedAt), s.HGet(key, versionField), "update should write the new note through")

	found, err = Find(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "changed", found.Title)

	require.NoError(t, Delete(ctx, created.Id))
	assert.Equal(t, tombstone, s.HGet(key, versionField), "delete should leave a tombstone")

	_, err = Find(ctx, created.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaleReadDoesNotReplaceNewerCache(t *testing.T) {
	s := testsys.Setup(t, true)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "before", Content: "body"})
	require.NoError(t, err)
	key := fmt.Sprintf(noteKey, created.Id)

	updated, err := Update(ctx, created.Id, UpdateNote{Title: "after", Content: "body"})
	require.NoError(t, err)

	// a find that read the row before the update commits last
	toCache(ctx, created)
	found, err := Find(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, updated, found)

	require.NoError(t, Delete(ctx, created.Id))
	toCache(ctx, updated)
	assert.Equal(t, tombstone, s.HGet(key, versionField))
	_, err = Find(ctx, created.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindIgnoresBrokenCacheEntry(t *testing.T) {
	s := testsys.Setup(t, true)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "t", Content: "c"})
	require.NoError(t, err)
	key := fmt.Sprintf(noteKey, created.Id)
	s.HSet(key, versionField, "0")
	s.HSet(key, noteField, "{not json")

	found, err := Find(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "t", found.Title)
	assert.Equal(t, formatTime(created.UpdatedAt), s.HGet(key, versionField), "broken entry should be replaced")
}

func TestIdsAboveInt64AreNotFound(t *testing.T) {
	testsys.Setup(t, true)
	ctx := context.Background()

	for _, id := range []uint64{math.MaxInt64 + 1, math.MaxUint64} {
		_, err := Find(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound, "find %d", id)

		_, err = Update(ctx, id, UpdateNote{Title: "t", Content: "c"})
		assert.ErrorIs(t, err, ErrNotFound, "update %d", id)

		assert.ErrorIs(t, Delete(ctx, id), ErrNotFound, "delete %d", id)
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 2, 3, 4, 5, 6, 7000, time.UTC)
	parsed, err := parseTime(formatTime(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))

	parsed, err = parseTime("2024-02-03T04:05:06.123+00:00")
	require.NoError(t, err)
	assert.Equal(t, 123*time.Millisecond, time.Duration(parsed.Nanosecond()))

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

// the store behaves like a map keyed by id under any sequence of operations
func TestStoreMatchesModel(t *testing.T) {
	testsys.Setup(t, false)
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		_, err := sysDB().ExecContext(ctx, "DELETE FROM notes")
		require.NoError(rt, err)

		model := map[uint64]Note{}
		ids := func() []uint64 {
			out := make([]uint64, 0, len(model))
			for id := range model {
				out = append(out, id)
			}
			sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
			return out
		}

		rt.Repeat(map[string]func(*rapid.T){
			"insert": func(rt *rapid.T) {
				title := rapid.StringMatching(`[a-z]{1,12}`).Draw(rt, "title")
				content := rapid.StringMatching(`[a-zA-Z0-9 .,!?\n]{0,40}`).Draw(rt, "content")
				n, err := Insert(ctx, NewNote{Title: title, Content: content})
				require.NoError(rt, err)
				_, dup := model[n.Id]
				require.False(rt, dup, "ids must be unique")
				model[n.Id] = n
			},
			"update": func(rt *rapid.T) {
				if len(model) == 0 {
					rt.Skip("no notes")
				}
				id := rapid.SampledFrom(ids()).Draw(rt, "id")
				prev := model[id]
				n, err := Update(ctx, id, UpdateNote{Title: "u", Content: rapid.StringMatching(`[a-zA-Z0-9 .,!?\n]{0,40}`).Draw(rt, "content")})
				require.NoError(rt, err)
				require.Equal(rt, prev.CreatedAt, n.CreatedAt)
				require.True(rt, n.UpdatedAt.After(prev.UpdatedAt))
				model[id] = n
			},
			"delete": func(rt *rapid.T) {
				if len(model) == 0 {
					rt.Skip("no notes")
				}
				id := rapid.SampledFrom(ids()).Draw(rt, "id")
				require.NoError(rt, Delete(ctx, id))
				delete(model, id)
				_, err := Find(ctx, id)
				require.ErrorIs(rt, err, ErrNotFound)
			},
			"": func(rt *rapid.T) {
				notes, err := List(ctx)
				require.NoError(rt, err)
				require.Len(rt, notes, len(model))
				for _, n := range notes {
					want, ok := model[n.Id]
					require.True(rt, ok)
					require.Equal(rt, want, n)
					require.False(rt, n.UpdatedAt.Before(n.CreatedAt))
				}
			},
		})
	})
}
