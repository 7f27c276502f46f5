package services

import (
	"context"
	"encoding/json"
	"time"
)

// ProfileCache is a keyed read cache for submitted profile payloads, tagged
// with the owner (admin email) that populated each entry. An entry is served
// only when its stored owner matches the requesting session's owner; on a
// mismatch it is dropped, so one admin never sees another's cached view.

const profileCacheTTL = 10 * time.Minute

type ProfileCache struct {
	kv KV
}

type cacheEntry struct {
	Owner    string          `json:"owner"`
	Data     json.RawMessage `json:"data"`
	CachedAt time.Time       `json:"cachedAt"`
}

func NewProfileCache(kv KV) *ProfileCache {
	return &ProfileCache{kv: kv}
}

// DefaultProfileCache is backed by the shared Redis client; nil-safe when
// Redis is down (every lookup misses).
func DefaultProfileCache() *ProfileCache {
	return NewProfileCache(redisKV{})
}

func profileCacheKey(key string) string {
	return "profile:cache:" + key
}

// Get returns the cached payload for key iff it was stored by owner.
func (pc *ProfileCache) Get(ctx context.Context, owner, key string) (json.RawMessage, bool) {
	raw, err := pc.kv.Get(ctx, profileCacheKey(key))
	if err != nil || raw == "" {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		pc.kv.Del(ctx, profileCacheKey(key))
		return nil, false
	}
	if entry.Owner != owner {
		// Stale owner: invalidate rather than serve across sessions.
		pc.kv.Del(ctx, profileCacheKey(key))
		return nil, false
	}
	return entry.Data, true
}

// Put stores a payload tagged with its owner. Errors are swallowed; the
// cache is a convenience.
func (pc *ProfileCache) Put(ctx context.Context, owner, key string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	entry, err := json.Marshal(cacheEntry{Owner: owner, Data: payload, CachedAt: time.Now()})
	if err != nil {
		return
	}
	pc.kv.Set(ctx, profileCacheKey(key), string(entry), profileCacheTTL)
}

// Invalidate drops one entry, e.g. after the underlying record changes.
func (pc *ProfileCache) Invalidate(ctx context.Context, key string) {
	pc.kv.Del(ctx, profileCacheKey(key))
}
