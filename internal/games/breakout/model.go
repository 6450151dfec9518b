package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Playfield geometry in pixels. All values are compiled in.
const (
	PlayerWidth  = 40
	PlayerHeight = 5
	BallSize     = 5
	BlockWidth   = 40
	BlockHeight  = 10

	MarginTop   = 25
	MarginLeft  = 15
	PaddingX    = 5
	PaddingY    = 5
	MarginRight = MarginLeft - PaddingX

	BlocksPerRow = 10
	RowsPerColor = 2

	ScreenWidth  = MarginLeft + BlocksPerRow*(BlockWidth+PaddingX) + MarginRight
	ScreenHeight = 420

	// PlayerBottomGap is the space between the paddle and the floor.
	PlayerBottomGap = 10
)

// Motion tuning. The simulation is frame-locked: every value is per step.
const (
	PlayerStep       = 8
	BallStartVX      = 1
	BallStartVY      = 4
	MaxBallSpeed     = 8
	PaddleNudge      = 3
	PaddleNudgeZone  = PlayerWidth / 4
	DisplayScoreStep = 10
)

// BlockCount is the number of blocks in a fresh field.
const BlockCount = len(blockColors) * RowsPerColor * BlocksPerRow

// Command is the discrete player input for one step.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	default:
		return "None"
	}
}

// Color is the category of a block. It decides points and display color.
type Color int

const (
	Red Color = iota
	Yellow
	Green
)

// blockColors is the top-to-bottom order of the color bands.
var blockColors = [...]Color{Red, Yellow, Green}

// Points returns the score awarded for destroying a block of this color.
func (c Color) Points() int {
	switch c {
	case Red:
		return 400
	case Yellow:
		return 200
	case Green:
		return 100
	default:
		return 0
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	default:
		return "Unknown"
	}
}

// ScreenColor maps the block color to the terminal palette.
func (c Color) ScreenColor() core.Color {
	switch c {
	case Red:
		return core.ColorRed
	case Yellow:
		return core.ColorYellow
	case Green:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// Player is the paddle. Y never changes after construction.
type Player struct {
	X, Y int
}

// newPlayer places the paddle centered near the bottom margin.
func newPlayer() Player {
	return Player{
		X: ScreenWidth/2 - PlayerWidth/2,
		Y: ScreenHeight - PlayerHeight - PlayerBottomGap,
	}
}

// MoveBy shifts the paddle horizontally, keeping it on screen.
func (p *Player) MoveBy(delta int) {
	p.X = core.Clamp(p.X+delta, 0, ScreenWidth-PlayerWidth)
}

// Rect returns the paddle bounds.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// TopEdge returns the segment the ball bounces off.
// The mighty paddle covers the whole floor.
func (p Player) TopEdge(mighty bool) (core.Point, core.Point) {
	if mighty {
		return core.Pt(0, p.Y), core.Pt(ScreenWidth, p.Y)
	}
	return core.Pt(p.X, p.Y), core.Pt(p.X+PlayerWidth, p.Y)
}

// CenterX returns the horizontal center of the bouncing surface.
func (p Player) CenterX(mighty bool) int {
	if mighty {
		return ScreenWidth / 2
	}
	return p.X + PlayerWidth/2
}

// Ball is the projectile. Position is the top-left corner.
type Ball struct {
	X, Y   int
	VX, VY int
	Exist  bool
	Fresh  bool // No paddle hit yet; blocks are ignored until the first one
}

// Move advances the ball by one velocity step.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Rect returns the ball bounds.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, BallSize, BallSize)
}

// Pos returns the top-left corner.
func (b Ball) Pos() core.Point {
	return core.Pt(b.X, b.Y)
}

// Center returns the center point of the ball.
func (b Ball) Center() core.Point {
	return core.Pt(b.X+BallSize/2, b.Y+BallSize/2)
}

// Block is a destructible brick. Destroyed blocks stay in place with Exist unset.
type Block struct {
	X, Y  int
	Exist bool
	Color Color
}

// Rect returns the block bounds.
func (b Block) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, BlockWidth, BlockHeight)
}

// TopEdge returns the block's upper edge segment.
func (b Block) TopEdge() (core.Point, core.Point) {
	return core.Pt(b.X, b.Y), core.Pt(b.X+BlockWidth, b.Y)
}

// BottomEdge returns the block's lower edge segment.
func (b Block) BottomEdge() (core.Point, core.Point) {
	return core.Pt(b.X, b.Y+BlockHeight), core.Pt(b.X+BlockWidth, b.Y+BlockHeight)
}

// Points returns the score value of the block.
func (b Block) Points() int {
	return b.Color.Points()
}

// State is the complete simulation state of one game.
// It is owned by a single driver and mutated in place by Step.
type State struct {
	Player Player
	Ball   Ball
	Blocks []Block // Row-major, Red rows first; indexes are stable for the game

	Score        int
	DisplayScore int // Cosmetic counter catching up to Score
	Frame        int

	IsOver  bool
	IsClear bool
	Mighty  bool // Paddle spans the whole floor

	Sounds core.SoundQueue
}

// NewState creates a fresh game with the ball already in flight.
func NewState(mighty bool) *State {
	s := &State{
		Player: newPlayer(),
		Ball: Ball{
			X:     ScreenWidth/2 - BallSize/2,
			Y:     0,
			VX:    BallStartVX,
			VY:    BallStartVY,
			Exist: true,
			Fresh: true,
		},
		Blocks: newBlocks(),
		Mighty: mighty,
	}

	if mighty {
		// Start below the field so the first descent is unobstructed
		s.Ball.Y = fieldBottom() + PaddingY
	}

	return s
}

// newBlocks lays out the block grid: each color gets RowsPerColor rows.
func newBlocks() []Block {
	blocks := make([]Block, 0, BlockCount)

	y := MarginTop
	for _, color := range blockColors {
		for range RowsPerColor {
			for col := range BlocksPerRow {
				blocks = append(blocks, Block{
					X:     MarginLeft + col*(BlockWidth+PaddingX),
					Y:     y,
					Exist: true,
					Color: color,
				})
			}
			y += BlockHeight + PaddingY
		}
	}

	return blocks
}

// fieldBottom returns the y coordinate just under the last block row.
func fieldBottom() int {
	rows := len(blockColors) * RowsPerColor
	return MarginTop + rows*(BlockHeight+PaddingY) - PaddingY
}

// RemainingBlocks counts blocks that still exist.
func (s *State) RemainingBlocks() int {
	count := 0
	for i := range s.Blocks {
		if s.Blocks[i].Exist {
			count++
		}
	}
	return count
}

// Terminal reports whether the game has ended.
func (s *State) Terminal() bool {
	return s.IsOver || s.IsClear
}
