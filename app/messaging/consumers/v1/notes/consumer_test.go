package notes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/platform/testsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

type NoteTests struct {
	topic *pubsub.Topic
}

func TestConsume(t *testing.T) {
	testsys.Setup(t, false)

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, time.Second)
	defer func() {
		_ = subscription.Shutdown(context.Background())
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Consume(withCancel, subscription, 2)
	}()

	nt := NoteTests{topic: topic}
	nt.testCrud(t)

	cancelFunc()
	select {
	case err := <-done:
		assert.NoError(t, err, "Consume should stop cleanly on cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("Consume did not stop after cancel")
	}
}

func (nt *NoteTests) send(t *testing.T, e note.Event) {
	t.Helper()
	marshal, err := json.Marshal(e)
	require.NoError(t, err)
	require.NoError(t, nt.topic.Send(context.Background(), &pubsub.Message{Body: marshal}))
}

func (nt *NoteTests) testCrud(t *testing.T) {
	nt.send(t, note.Event{
		Type: note.EventCreate,
		Data: map[string]string{"title": "other", "content": "other text"},
	})

	var created note.Note
	require.Eventually(t, func() bool {
		notes, err := note.List(context.Background())
		if err != nil || len(notes) != 1 {
			return false
		}
		created = notes[0]
		return true
	}, 5*time.Second, 20*time.Millisecond, "created note should show up")
	assert.Equal(t, "other", created.Title)
	assert.Equal(t, "other text", created.Content)

	nt.send(t, note.Event{
		Type: note.EventUpdate,
		Id:   created.Id,
		Data: map[string]string{"title": "edited", "content": ""},
	})
	require.Eventually(t, func() bool {
		n, err := note.Find(context.Background(), created.Id)
		return err == nil && n.Title == "edited"
	}, 5*time.Second, 20*time.Millisecond, "update should be applied")

	// invalid events are acked and dropped
	nt.send(t, note.Event{Type: note.EventCreate, Data: map[string]string{"title": ""}})
	nt.send(t, note.Event{Type: "archive", Id: created.Id})

	nt.send(t, note.Event{Type: note.EventDelete, Id: created.Id})
	require.Eventually(t, func() bool {
		_, err := note.Find(context.Background(), created.Id)
		return errors.Is(err, note.ErrNotFound)
	}, 5*time.Second, 20*time.Millisecond, "delete should be applied")

	notes, err := note.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestHandle(t *testing.T) {
	testsys.Setup(t, false)
	ctx := context.Background()

	assert.ErrorContains(t, Handle(ctx, []byte("{")), "failed to parse body")
	assert.ErrorContains(t, Handle(ctx, []byte(`{"type":"nope"}`)), "unknown event type")

	err := Handle(ctx, []byte(`{"type":"create","data":{"title":"","content":"x"}}`))
	var verr *note.ValidationError
	assert.ErrorAs(t, err, &verr)

	assert.ErrorIs(t, Handle(ctx, []byte(`{"type":"delete","id":404}`)), note.ErrNotFound)
	assert.ErrorIs(t, Handle(ctx, []byte(`{"type":"delete","id":18446744073709551615}`)), note.ErrNotFound)
	assert.ErrorIs(t, Handle(ctx, []byte(`{"type":"update","id":9223372036854775808,"data":{"title":"t","content":"c"}}`)), note.ErrNotFound)

	require.NoError(t, Handle(ctx, []byte(`{"type":"create","data":{"title":"from queue","content":""}}`)))
	notes, err := note.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "from queue", notes[0].Title)
}
