package game

import (
	"errors"
	"strconv"
	"strings"
)

// hexDigits is the alphabet random colors are drawn from.
const hexDigits = "0123456789ABCDEF"

// ErrInvalidColor is returned by ParseColor for values that are not #RRGGBB.
var ErrInvalidColor = errors.New("game: invalid color")

// Color is an RGB color code in the form "#RRGGBB" with uppercase hex digits.
// Colors carry no meaning beyond identity: two colors are the same swatch
// exactly when their strings are equal.
type Color string

// Source is the randomness the engine draws from.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// RandomColor builds a color from six independent uniform draws over the
// sixteen hex digits.
func RandomColor(src Source) Color {
	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	for range 6 {
		b.WriteByte(hexDigits[src.Intn(len(hexDigits))])
	}
	return Color(b.String())
}

// ParseColor normalizes a user-supplied color code.
// The leading '#' is optional and lowercase digits are accepted.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return "", ErrInvalidColor
	}
	s = strings.ToUpper(s)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(hexDigits, s[i]) < 0 {
			return "", ErrInvalidColor
		}
	}
	return Color("#" + s), nil
}

// Hex returns the six hex digits without the leading '#'.
func (c Color) Hex() string {
	return strings.TrimPrefix(string(c), "#")
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return string(c)
}

// RGB returns the red, green and blue channels.
// Malformed colors yield black.
func (c Color) RGB() (r, g, b uint8) {
	hex := c.Hex()
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// IsLight reports whether dark text reads better than light text on c.
// Uses the ITU-R BT.601 luma weights.
func (c Color) IsLight() bool {
	r, g, b := c.RGB()
	luma := 299*int(r) + 587*int(g) + 114*int(b)
	return luma >= 128*1000
}
