package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Block is a static, indestructible rectangle.
type Block struct {
	Entity
}

func newBlock(x, y, w, h float64, color core.Color) Block {
	return Block{Entity: newEntity(x, y, w, h, color)}
}

// Border is the playfield frame. The bottom is open.
type Border struct {
	Left, Top, Right Block
}

// All returns the border blocks: left, top, right.
func (b Border) All() []Block {
	return []Block{b.Left, b.Top, b.Right}
}

// Blocks are the two corner stoppers at paddle height.
type Blocks struct {
	Left, Right Block
}

// All returns the corner blocks, left first.
func (b Blocks) All() []Block {
	return []Block{b.Left, b.Right}
}

func newBorder(cfg config.BreakoutConfig) Border {
	w, h, s := cfg.Field.Width, cfg.Field.Height, cfg.Field.BlockSize
	return Border{
		Left:  newBlock(0, 1.5*s, s, h-2.5*s, core.ColorGray),
		Top:   newBlock(s, h-2*s, w-2*s, s, core.ColorGray),
		Right: newBlock(w-s, 1.5*s, s, h-2.5*s, core.ColorGray),
	}
}

func newBlocks(cfg config.BreakoutConfig) Blocks {
	w, s := cfg.Field.Width, cfg.Field.BlockSize
	return Blocks{
		Left:  newBlock(0, s, s, s/2, core.ColorTeal),
		Right: newBlock(w-s, s, s, s/2, core.ColorBrickRed),
	}
}
