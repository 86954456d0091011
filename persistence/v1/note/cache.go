package note

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/simple-notes/sys"
)

// cache failures are logged and never returned, the database stays the source of truth

// cached notes are hashes of {version, note}. version is the formatted updated_at, so a
// stale read can never replace a newer write. deleted notes keep a tombstone version.
const (
	versionField = "version"
	noteField    = "note"
	tombstone    = "~"
)

// storeScript writes the note only when the cached version is older than the given one
var storeScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and current >= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'note', ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[3])
end
return 1
`)

type cached int

const (
	miss cached = iota
	hit
	gone
)

// inRange reports whether id can exist at all, ids are signed 64 bit in every dialect
func inRange(id uint64) bool {
	return id > 0 && id <= math.MaxInt64
}

func fromCache(ctx context.Context, id uint64) (Note, cached) {
	cache := sys.R.Cache
	if cache == nil {
		return Note{}, miss
	}
	logger := sys.R.Log
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	values, err := cache.HMGet(tcCtx, key, versionField, noteField).Result()
	if err != nil {
		logger.Errorw("failure to get note from cache", "id", id, "ERROR", err)
		return Note{}, miss
	}

	version, _ := values[0].(string)
	data, _ := values[1].(string)
	switch version {
	case "":
		return Note{}, miss
	case tombstone:
		return Note{}, gone
	}

	var n Note
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		logger.Errorw("error parsing cached note", "key", key, "ERROR", err)
		return Note{}, miss
	}
	return n, hit
}

func toCache(ctx context.Context, n Note) {
	data, err := json.Marshal(n)
	if err != nil {
		sys.R.Log.Errorw("error encoding note for cache", "id", n.Id, "ERROR", err)
		return
	}
	store(ctx, n.Id, formatTime(n.UpdatedAt), string(data))
}

// forget marks a deleted note so that reads racing the delete cannot cache it again
func forget(ctx context.Context, id uint64) {
	store(ctx, id, tombstone, "")
}

func store(ctx context.Context, id uint64, version, data string) {
	cache := sys.R.Cache
	if cache == nil {
		return
	}
	key := fmt.Sprintf(noteKey, id)
	ttl := sys.Configs.Cache.CacheTTL.Milliseconds()

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := storeScript.Run(tcCtx, cache, []string{key}, version, data, ttl).Err(); err != nil {
		sys.R.Log.Errorw("failure to set note into cache", "id", id, "ERROR", err)
	}
}
