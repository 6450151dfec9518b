package breakout

// Snapshot captures the complete simulation state using primitive types.
// Two runs fed the same commands produce equal snapshots.
type Snapshot struct {
	Frame        uint64
	PlayerX      int
	BallX        int
	BallY        int
	BallVX       int
	BallVY       int
	BallFresh    bool
	Score        int
	DisplayScore int
	IsOver       bool
	IsClear      bool
	Mighty       bool

	// One entry per block in layout order: 1 = exists, 0 = destroyed
	BlockData []int

	// Sounds still waiting to be drained
	PendingSounds []int
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	blockData := make([]int, len(s.Blocks))
	for i, block := range s.Blocks {
		if block.Exist {
			blockData[i] = 1
		}
	}

	pending := s.Sounds.Pending()
	soundData := make([]int, len(pending))
	for i, snd := range pending {
		soundData[i] = int(snd)
	}

	return Snapshot{
		Frame:         uint64(s.Frame), //#nosec G115 -- frame count is never negative
		PlayerX:       s.Player.X,
		BallX:         s.Ball.X,
		BallY:         s.Ball.Y,
		BallVX:        s.Ball.VX,
		BallVY:        s.Ball.VY,
		BallFresh:     s.Ball.Fresh,
		Score:         s.Score,
		DisplayScore:  s.DisplayScore,
		IsOver:        s.IsOver,
		IsClear:       s.IsClear,
		Mighty:        s.Mighty,
		BlockData:     blockData,
		PendingSounds: soundData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DisplayScore) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.BallFresh)
	h = h*31 + boolBit(snap.IsOver)
	h = h*31 + boolBit(snap.IsClear)
	h = h*31 + boolBit(snap.Mighty)

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PendingSounds {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
