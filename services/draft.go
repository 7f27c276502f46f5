package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"plumtrips-backend/onboarding"
)

// Drafts are a convenience cache, not a source of truth: they live in Redis
// with a TTL and every failure here is swallowed. The submitted record in
// postgres supersedes them.

const draftTTL = 14 * 24 * time.Hour

type Draft struct {
	Core        map[string]any          `json:"core"`
	Attachments []onboarding.Attachment `json:"attachments"`
	SavedAt     time.Time               `json:"savedAt"`
}

// DraftStore checkpoints in-progress wizard forms, keyed by invite token.
type DraftStore struct {
	kv KV
}

func NewDraftStore(kv KV) *DraftStore {
	return &DraftStore{kv: kv}
}

// Drafts is the shared store, backed by Redis; swapped for a map-backed KV
// in tests.
var Drafts = NewDraftStore(redisKV{})

func draftKey(token string) string {
	return "onboarding:draft:" + token
}

// Save checkpoints the in-progress form. Best-effort: errors are logged and
// dropped, the next save attempt simply overwrites.
func (s *DraftStore) Save(ctx context.Context, token string, draft Draft) {
	draft.SavedAt = time.Now()
	payload, err := json.Marshal(draft)
	if err != nil {
		log.Printf("❌ Draft marshal error for %s: %v", token, err)
		return
	}

	if err := s.kv.Set(ctx, draftKey(token), string(payload), draftTTL); err != nil {
		log.Printf("⚠️  Draft save failed for %s: %v", token, err)
	}
}

// Load returns the saved draft for a token, if any.
func (s *DraftStore) Load(ctx context.Context, token string) (Draft, bool) {
	raw, err := s.kv.Get(ctx, draftKey(token))
	if err != nil || raw == "" {
		return Draft{}, false
	}

	var draft Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		log.Printf("⚠️  Corrupt draft for %s, discarding: %v", token, err)
		s.kv.Del(ctx, draftKey(token))
		return Draft{}, false
	}
	return draft, true
}

// Delete drops the draft once the submitted record supersedes it.
func (s *DraftStore) Delete(ctx context.Context, token string) {
	if err := s.kv.Del(ctx, draftKey(token)); err != nil {
		log.Printf("⚠️  Draft delete failed for %s: %v", token, err)
	}
}
