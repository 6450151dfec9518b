package core

import "testing"

func TestSoundQueueDrain(t *testing.T) {
	var q SoundQueue

	if got := q.Drain(); len(got) != 0 {
		t.Fatalf("Drain on empty queue returned %v", got)
	}

	q.Push(SoundHit)
	q.Push(SoundCrash)
	q.Push(SoundHit)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	pending := q.Pending()
	if q.Len() != 3 {
		t.Error("Pending should not clear the queue")
	}
	pending[0] = SoundCrash // Must not alias the queue
	if q.Pending()[0] != SoundHit {
		t.Error("Pending should return a copy")
	}

	drained := q.Drain()
	expected := []Sound{SoundHit, SoundCrash, SoundHit}
	if len(drained) != len(expected) {
		t.Fatalf("Drain() returned %d sounds, expected %d", len(drained), len(expected))
	}
	for i := range expected {
		if drained[i] != expected[i] {
			t.Errorf("Drain()[%d] = %s, expected %s", i, drained[i], expected[i])
		}
	}

	if q.Len() != 0 {
		t.Errorf("Queue should be empty after Drain, Len() = %d", q.Len())
	}
}

func TestSoundString(t *testing.T) {
	tests := []struct {
		sound    Sound
		expected string
	}{
		{SoundHit, "hit"},
		{SoundCrash, "crash"},
		{Sound(99), "unknown"},
	}

	for _, tc := range tests {
		if tc.sound.String() != tc.expected {
			t.Errorf("Sound(%d).String() = %q, expected %q", int(tc.sound), tc.sound.String(), tc.expected)
		}
	}

	if len(AllSounds()) != 2 {
		t.Errorf("AllSounds() should list 2 kinds, got %d", len(AllSounds()))
	}
}
