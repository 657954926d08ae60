package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertArea checks every cell of r holds want.
func assertArea(t *testing.T, s *Screen, r Rect, want rune) {
	t.Helper()
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			assert.Equal(t, want, s.Get(x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)
	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	assertArea(t, s, NewRect(0, 0, 80, 24), ' ')
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	assert.NotPanics(t, func() {
		s.Set(-1, 0, 'A')
		s.Set(100, 0, 'A')
		s.Set(0, -1, 'A')
		s.Set(0, 100, 'A')
	})
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')
	assertArea(t, s, NewRect(0, 0, 5, 5), '#')

	s.Clear()
	assertArea(t, s, NewRect(0, 0, 5, 5), ' ')
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	assert.Equal(t, "  Hello", strings.TrimRight(s.Row(1), " "))

	// Clipped at the right edge.
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))

	s.DrawTextCentered(2, "Hi")
	assert.Equal(t, 'H', s.Get(9, 2))
	assert.Equal(t, 'i', s.Get(10, 2))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	assertArea(t, s, NewRect(2, 2, 3, 3), '#')
	assert.Equal(t, ' ', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(5, 5))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┐', s.Get(5, 1))
	assert.Equal(t, '└', s.Get(1, 4))
	assert.Equal(t, '┘', s.Get(5, 4))
	assertArea(t, s, NewRect(2, 1, 3, 1), '─')
	assertArea(t, s, NewRect(2, 4, 3, 1), '─')
	assertArea(t, s, NewRect(1, 2, 1, 2), '│')
	assertArea(t, s, NewRect(5, 2, 1, 2), '│')
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")
	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "row 0 = %q", s.Row(0))

	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "row 0 = %q", s.Row(0))
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	assert.Equal(t, "Test      ", s.Row(2))
	assert.Equal(t, "          ", s.Row(-1))
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '#', ColorBrickRed)
	assert.Equal(t, Cell{Rune: '#', Color: ColorBrickRed}, s.GetCell(1, 1))
	assert.Equal(t, "#c84848", ColorBrickRed.Hex())

	s.Set(1, 1, 'x')
	assert.Equal(t, ColorDefault, s.GetCell(1, 1).Color, "Set resets the color")

	s.DrawTextColored(0, 0, "ab", ColorCyan)
	assert.Equal(t, ColorCyan, s.GetCell(1, 0).Color)

	s.Resize(5, 2)
	assert.Equal(t, ColorCyan, s.GetCell(1, 0).Color, "Resize keeps colors")

	s.Clear()
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(1, 0))
	assert.Equal(t, ' ', s.GetCell(-1, 0).Rune)
}

func TestBrickRowColors(t *testing.T) {
	seen := make(map[string]bool)
	for row, c := range BrickRowColors {
		hex := c.Hex()
		assert.NotEmpty(t, hex, "row %d", row)
		assert.False(t, seen[hex], "row %d repeats color %s", row, hex)
		seen[hex] = true
	}
}
