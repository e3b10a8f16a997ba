package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type memoryStore struct {
	values  map[string][]byte
	expires map[string]time.Time
	now     time.Time
	setErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		values:  make(map[string][]byte),
		expires: make(map[string]time.Time),
		now:     time.Now(),
	}
}

func (m *memoryStore) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if exp, ok := m.expires[key]; ok && !m.now.Before(exp) {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryStore) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = b
	if ttl > 0 {
		m.expires[key] = m.now.Add(ttl)
	}
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	delete(m.expires, key)
	return nil
}

type payload struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func requireTitle(p *payload) error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func TestEntry_RoundTrip(t *testing.T) {
	store := newMemoryStore()
	entry := NewEntry[payload](store, "test:roundtrip", requireTitle)

	want := payload{Title: "Engineer", Count: 3}
	if err := entry.Set(context.Background(), &want, time.Minute); err != nil {
		t.Fatalf("unexpected set err: %v", err)
	}

	got := entry.Get(context.Background())
	if got == nil {
		t.Fatalf("expected a hit before TTL expiry")
	}
	if *got != want {
		t.Fatalf("round-trip mismatch: got %+v want %+v", *got, want)
	}
}

func TestEntry_MissAfterExpiry(t *testing.T) {
	store := newMemoryStore()
	entry := NewEntry[payload](store, "test:expiry", requireTitle)

	if err := entry.Set(context.Background(), &payload{Title: "Engineer"}, time.Minute); err != nil {
		t.Fatalf("unexpected set err: %v", err)
	}

	store.now = store.now.Add(2 * time.Minute)

	if got := entry.Get(context.Background()); got != nil {
		t.Fatalf("expected a miss after expiry, got %+v", *got)
	}
}

func TestEntry_InvalidPayloadReadsAsMiss(t *testing.T) {
	store := newMemoryStore()
	entry := NewEntry[payload](store, "test:invalid", requireTitle)

	// A drifted payload missing the required field must read as a miss,
	// not an error.
	store.values["test:invalid"] = []byte(`{"count": 7}`)
	if got := entry.Get(context.Background()); got != nil {
		t.Fatalf("expected schema-invalid payload to read as miss, got %+v", *got)
	}

	// Same for a payload that is not even JSON.
	store.values["test:invalid"] = []byte(`not-json`)
	if got := entry.Get(context.Background()); got != nil {
		t.Fatalf("expected unparseable payload to read as miss")
	}
}

func TestEntry_AbsentKeyIsMiss(t *testing.T) {
	entry := NewEntry[payload](newMemoryStore(), "test:absent", requireTitle)
	if got := entry.Get(context.Background()); got != nil {
		t.Fatalf("expected miss for absent key")
	}
}

func TestEntry_SetOverwrites(t *testing.T) {
	store := newMemoryStore()
	entry := NewEntry[payload](store, "test:overwrite", requireTitle)

	_ = entry.Set(context.Background(), &payload{Title: "First"}, time.Minute)
	_ = entry.Set(context.Background(), &payload{Title: "Second"}, time.Minute)

	got := entry.Get(context.Background())
	if got == nil || got.Title != "Second" {
		t.Fatalf("expected unconditional overwrite, got %+v", got)
	}
}
