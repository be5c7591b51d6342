// Package palette derives a complete UI color scheme from a 16-color ANSI
// terminal palette.
package palette

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
)

// ANSI slot indices.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Source is the normalized terminal palette a UI scheme is derived from.
// Channels are expected in [0,1].
type Source struct {
	ANSI       [16]colorspace.Color
	Background colorspace.Color
	Foreground colorspace.Color
	Cursor     *colorspace.Color
	Selection  *colorspace.Color
}

// Clamped returns a copy with every channel limited to [0,1].
func (s Source) Clamped() Source {
	out := s
	for i, c := range s.ANSI {
		out.ANSI[i] = c.Clamped()
	}
	out.Background = s.Background.Clamped()
	out.Foreground = s.Foreground.Clamped()
	if s.Cursor != nil {
		c := s.Cursor.Clamped()
		out.Cursor = &c
	}
	if s.Selection != nil {
		c := s.Selection.Clamped()
		out.Selection = &c
	}
	return out
}

// Hash returns a stable digest of the source colors.
func (s Source) Hash() string {
	h := sha256.New()
	var buf [8]byte
	write := func(c colorspace.Color) {
		for _, v := range c.Values() {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	writeOptional := func(c *colorspace.Color) {
		if c == nil {
			h.Write([]byte{0})
			return
		}
		h.Write([]byte{1})
		write(*c)
	}

	for _, c := range s.ANSI {
		write(c)
	}
	write(s.Background)
	write(s.Foreground)
	writeOptional(s.Cursor)
	writeOptional(s.Selection)
	return hex.EncodeToString(h.Sum(nil))
}
