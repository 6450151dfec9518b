package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Step advances the simulation by one frame.
//
// The order of the phases matters: each phase reads the ball position
// left behind by the previous one. Once the game is over or cleared,
// Step leaves the state untouched.
func (s *State) Step(cmd Command) {
	if s.Terminal() {
		return
	}
	if len(s.Blocks) == 0 {
		panic("breakout: step on a state without blocks")
	}

	// Player movement
	switch cmd {
	case CommandLeft:
		s.Player.MoveBy(-PlayerStep)
	case CommandRight:
		s.Player.MoveBy(PlayerStep)
	}

	prev := s.Ball.Pos()
	prevCenter := s.Ball.Center()
	s.Ball.Move()

	// Floor
	if s.Ball.Y >= ScreenHeight {
		s.IsOver = true
		s.Sounds.Push(core.SoundCrash)
		s.Frame++
		return
	}

	s.bouncePaddle(prev)
	s.bounceWalls()

	if !s.Ball.Fresh && s.hitBlock(prevCenter, s.Ball.Center()) {
		s.Ball.VY = -s.Ball.VY
		s.Ball.VY = accelerate(s.Ball.VY)
		s.Sounds.Push(core.SoundHit)
	}

	s.animateScore()

	if s.RemainingBlocks() == 0 {
		s.IsClear = true
	}

	s.Frame++
}

// bouncePaddle reflects the ball when its travel since prev crossed the paddle top.
func (s *State) bouncePaddle(prev core.Point) {
	a, b := s.Player.TopEdge(s.Mighty)
	if !core.Intersect(prev, s.Ball.Pos(), a, b) {
		return
	}

	s.Ball.VY = -s.Ball.VY
	s.Ball.Y = s.Player.Y - BallSize

	// Off-center hits push the ball further out
	offset := s.Ball.Center().X - s.Player.CenterX(s.Mighty)
	if core.Abs(offset) > PaddleNudgeZone {
		s.Ball.X += core.Sign(offset) * PaddleNudge
	}

	s.Ball.Fresh = false
	s.Sounds.Push(core.SoundHit)
}

// bounceWalls reflects the ball off the left, right and top walls.
func (s *State) bounceWalls() {
	if s.Ball.X < 0 {
		s.Ball.X = 0
		s.Ball.VX = -s.Ball.VX
	}
	if s.Ball.X > ScreenWidth-BallSize {
		s.Ball.X = ScreenWidth - BallSize
		s.Ball.VX = -s.Ball.VX
	}
	if s.Ball.Y < 0 {
		s.Ball.Y = 0
		s.Ball.VY = -s.Ball.VY
	}
}

// hitBlock destroys the first block whose facing edge the ball center
// crossed between from and to. Blocks are scanned nearest-first along the
// vertical direction of travel, so at most one block falls per step.
// Side edges are not tested.
func (s *State) hitBlock(from, to core.Point) bool {
	if s.Ball.VY == 0 {
		return false
	}
	down := s.Ball.VY > 0

	n := len(s.Blocks)
	for k := range n {
		i := k
		if !down {
			i = n - 1 - k
		}

		block := &s.Blocks[i]
		if !block.Exist {
			continue
		}

		var a, b core.Point
		if down {
			a, b = block.TopEdge()
		} else {
			a, b = block.BottomEdge()
		}
		if !core.Intersect(from, to, a, b) {
			continue
		}

		block.Exist = false
		s.Score += block.Points()
		return true
	}

	return false
}

// accelerate grows the magnitude of v by one, capped at MaxBallSpeed.
func accelerate(v int) int {
	speed := core.Min(core.Abs(v)+1, MaxBallSpeed)
	if v < 0 {
		return -speed
	}
	return speed
}

// animateScore moves the displayed score toward the real one.
func (s *State) animateScore() {
	if s.DisplayScore < s.Score {
		s.DisplayScore = core.Min(s.DisplayScore+DisplayScoreStep, s.Score)
	}
}
