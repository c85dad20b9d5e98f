package state

import (
	"testing"
)

func TestStoreWriteNotifiesOnChange(t *testing.T) {
	s := NewStore(Default())

	var calls int
	var gotValue, gotPrev any
	s.Subscribe(KeyCurrentSection, func(value, prev any) {
		calls++
		gotValue, gotPrev = value, prev
	})

	s.Write(Set(KeyCurrentSection, "intro"))
	if calls != 1 {
		t.Fatalf("Expected 1 notification, got %d", calls)
	}
	if gotValue != "intro" || gotPrev != "" {
		t.Errorf("Expected (intro, \"\"), got (%v, %v)", gotValue, gotPrev)
	}

	// Same value: no notification
	s.Write(Set(KeyCurrentSection, "intro"))
	if calls != 1 {
		t.Errorf("Expected no notification for unchanged value, got %d calls", calls)
	}

	if s.Snapshot().CurrentSection != "intro" {
		t.Errorf("Expected snapshot section intro, got %q", s.Snapshot().CurrentSection)
	}
}

func TestStoreWriteMultipleKeys(t *testing.T) {
	s := NewStore(Default())

	var dragging, sound int
	s.Subscribe(KeyDragging, func(value, prev any) { dragging++ })
	s.Subscribe(KeySoundEnabled, func(value, prev any) { sound++ })

	s.Write(Set(KeyDragging, true), Set(KeySoundEnabled, false))
	if dragging != 1 {
		t.Errorf("Expected dragging notification, got %d", dragging)
	}
	if sound != 0 {
		t.Errorf("Expected no sound notification (unchanged), got %d", sound)
	}
}

func TestStoreIgnoresMistypedValues(t *testing.T) {
	s := NewStore(Default())

	var calls int
	s.Subscribe(KeyTheme, func(value, prev any) { calls++ })

	s.Write(Set(KeyTheme, 42), Set(Key(200), "x"))
	if calls != 0 {
		t.Errorf("Expected mistyped write ignored, got %d notifications", calls)
	}
	if s.Snapshot().Theme != ThemeDark {
		t.Errorf("Expected theme unchanged, got %q", s.Snapshot().Theme)
	}
}

func TestStoreListenerMayWriteBack(t *testing.T) {
	s := NewStore(Default())

	s.Subscribe(KeyAutoPlaying, func(value, prev any) {
		if value == true {
			s.Write(Set(KeyExpanded, true))
		}
	})

	s.Write(Set(KeyAutoPlaying, true))
	if !s.Snapshot().Expanded {
		t.Error("Expected nested write from listener to apply")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore(Default())
	snap := s.Snapshot()
	snap.Theme = ThemeLight
	if s.Snapshot().Theme != ThemeDark {
		t.Error("Expected snapshot mutation not to leak into the store")
	}
}
