package system

import (
	"errors"
	"testing"
)

type memoryStore struct {
	items map[string][]byte
	saves int
	err   error
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	m.saves++
	return nil
}

func TestScoreboardKeepsBest(t *testing.T) {
	store := &memoryStore{items: map[string][]byte{scoreItemKey: []byte(`{"best":2}`)}}
	sb, err := NewScoreboard(store)
	if err != nil {
		t.Fatalf("NewScoreboard: %v", err)
	}
	if sb.Best != 2 {
		t.Fatalf("expected saved best 2, got %d", sb.Best)
	}

	sb.OnCollectibleGathered()
	sb.OnCollectibleGathered()
	if store.saves != 0 {
		t.Fatalf("should not save before beating the best, got %d saves", store.saves)
	}
	sb.OnCollectibleGathered()
	if sb.Score != 3 || sb.Best != 3 || store.saves != 1 {
		t.Fatalf("expected score 3 best 3 with 1 save, got %+v saves=%d", sb, store.saves)
	}

	again, err := NewScoreboard(store)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Best != 3 || again.Score != 0 {
		t.Fatalf("expected fresh session with best 3, got %+v", again)
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	sb, err := NewScoreboard(&memoryStore{})
	if err != nil || sb.Best != 0 {
		t.Fatalf("expected empty scoreboard, got %+v err=%v", sb, err)
	}

	sb.OnHazardContact()
	if sb.HazardHits != 1 || sb.Score != 0 {
		t.Fatalf("hazard should not change score, got %+v", sb)
	}
}

func TestScoreboardLoadError(t *testing.T) {
	boom := errors.New("disk gone")
	sb, err := NewScoreboard(&memoryStore{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
	if sb == nil {
		t.Fatalf("expected a usable scoreboard even on error")
	}
	// save failures are logged, never fatal
	sb.OnCollectibleGathered()
	if sb.Score != 1 {
		t.Fatalf("expected score 1, got %d", sb.Score)
	}
}
