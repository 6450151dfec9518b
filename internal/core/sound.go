package core

// Sound identifies a sound effect requested by the simulation.
// The set is closed; the audio layer maps every kind to an asset at startup.
type Sound int

const (
	SoundHit   Sound = iota // Paddle or block hit
	SoundCrash              // Ball fell past the paddle
)

// AllSounds returns every sound kind in declaration order.
func AllSounds() []Sound {
	return []Sound{SoundHit, SoundCrash}
}

// String returns the symbolic identifier of the sound.
func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// SoundQueue collects sound requests produced during a tick.
// The simulation only appends; the platform drains once per frame.
type SoundQueue struct {
	pending []Sound
}

// Push appends a sound request.
func (q *SoundQueue) Push(s Sound) {
	q.pending = append(q.pending, s)
}

// Len returns the number of pending requests.
func (q *SoundQueue) Len() int {
	return len(q.pending)
}

// Pending returns a copy of the pending requests without clearing them.
func (q *SoundQueue) Pending() []Sound {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Sound, len(q.pending))
	copy(out, q.pending)
	return out
}

// Drain returns the pending requests in order and empties the queue.
func (q *SoundQueue) Drain() []Sound {
	out := q.pending
	q.pending = nil
	return out
}
