package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bloom/internal/storage"
)

type fakeBlooms struct {
	entries []storage.BloomEntry
}

func (f *fakeBlooms) Blooms(owner string, limit int) ([]storage.BloomEntry, error) {
	var out []storage.BloomEntry
	for _, e := range f.entries {
		if owner == "" || e.Owner == owner {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBlooms) BloomStats(owner string) (*storage.BloomStats, error) {
	entries, _ := f.Blooms(owner, 0)
	return &storage.BloomStats{Count: len(entries), MeanAge: 3600, TopOutcome: "large"}, nil
}

func sampleBlooms() *fakeBlooms {
	at := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	return &fakeBlooms{entries: []storage.BloomEntry{
		{ID: 3, Owner: "alice", Seed: "sun", Phase2: "straight", Phase3: "large", AgeSeconds: 90000, CreatedAt: at},
		{ID: 2, Owner: "bob", Seed: "rain", Phase2: "curved", Phase3: "small", AgeSeconds: 7200, CreatedAt: at},
		{ID: 1, Owner: "alice", Seed: "moon", Phase2: "", Phase3: "frilly", AgeSeconds: 5400, CreatedAt: at},
	}}
}

func TestHistoryOwners(t *testing.T) {
	m := NewHistoryModel(sampleBlooms(), 100, 30)

	want := []string{allOwners, "alice", "bob"}
	if len(m.owners) != len(want) {
		t.Fatalf("owners = %q, expected %q", m.owners, want)
	}
	for i := range want {
		if m.owners[i] != want[i] {
			t.Errorf("owners[%d] = %q, expected %q", i, m.owners[i], want[i])
		}
	}
	if len(m.entries) != 3 {
		t.Errorf("entries = %d, expected all 3", len(m.entries))
	}
}

func TestHistoryOwnerCycling(t *testing.T) {
	m := NewHistoryModel(sampleBlooms(), 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.currentOwner() != "alice" || len(m.entries) != 2 {
		t.Errorf("after tab: owner %q with %d entries", m.currentOwner(), len(m.entries))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if m.currentOwner() != "bob" || len(m.entries) != 1 {
		t.Errorf("after two shift+tab: owner %q with %d entries", m.currentOwner(), len(m.entries))
	}
	if !strings.Contains(m.View(), "BLOOM HISTORY - bob") {
		t.Error("title should name the selected gardener")
	}
}

func TestHistoryBackAndQuit(t *testing.T) {
	m := NewHistoryModel(sampleBlooms(), 100, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(HistoryModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(HistoryModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(nil, 60, 20)
	view := m.View()
	if !strings.Contains(view, "No flowers have bloomed yet") {
		t.Errorf("expected the empty message, got:\n%s", view)
	}
	if strings.Contains(view, "Gardeners") {
		t.Error("narrow window should not show the sidebar")
	}
}

func TestHistoryView(t *testing.T) {
	m := NewHistoryModel(sampleBlooms(), 100, 30)
	view := m.View()
	for _, want := range []string{"Gardeners", "Everyone", "alice", "straight", "1d 01h 00m", "3 blooms"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00h 00m"},
		{59, "00h 00m"},
		{3660, "01h 01m"},
		{86400, "1d 00h 00m"},
		{90061, "1d 01h 01m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.seconds, got, tt.want)
		}
	}
}
