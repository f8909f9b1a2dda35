package fetcher

import "testing"

func TestKind_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Kind
		want     bool
	}{
		{Idle, Loading, true},
		{Idle, Loaded, false},
		{Idle, Failed, false},
		{Loading, Loaded, true},
		{Loading, Failed, true},
		{Loading, Loading, true},
		{Loading, Idle, false},
		{Loaded, Loading, true},
		{Loaded, Failed, false},
		{Loaded, Idle, false},
		{Failed, Loading, true},
		{Failed, Loaded, false},
		{Failed, Idle, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"→"+tt.to.String(), func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_StringAndMood(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		mood string
	}{
		{Idle, "idle", "😂"},
		{Loading, "loading", "⏳"},
		{Loaded, "loaded", "🤣"},
		{Failed, "failed", "😬"},
		{Kind(99), "unknown", "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.Mood(); got != tt.mood {
				t.Errorf("Mood() = %q, want %q", got, tt.mood)
			}
		})
	}
}
