package maze

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// Returned (wrapped) by ParseColor for malformed color strings.
var ErrInvalidColor = errors.New("invalid color string")

// Parses a color written as "#rrggbb", or "#rrggbb.aa" to include an alpha
// value. Hex digits may be upper or lower case. Alpha defaults to 255.
func ParseColor(s string) (color.RGBA, error) {
	if ((len(s) != 7) && (len(s) != 10)) || (s[0] != '#') {
		return color.RGBA{}, fmt.Errorf("%w: \"%s\"", ErrInvalidColor, s)
	}
	if (len(s) == 10) && (s[7] != '.') {
		return color.RGBA{}, fmt.Errorf("%w: \"%s\"", ErrInvalidColor, s)
	}
	parts := []string{s[1:3], s[3:5], s[5:7]}
	if len(s) == 10 {
		parts = append(parts, s[8:10])
	}
	values := [4]uint8{255, 255, 255, 255}
	for i, p := range parts {
		v, e := strconv.ParseUint(p, 16, 8)
		if e != nil {
			return color.RGBA{}, fmt.Errorf("%w: \"%s\": %s", ErrInvalidColor,
				s, e)
		}
		values[i] = uint8(v)
	}
	return color.RGBA{
		R: values[0],
		G: values[1],
		B: values[2],
		A: values[3],
	}, nil
}

// The inverse of ParseColor. The ".aa" suffix is only included if the alpha
// isn't 255.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x.%02x", c.R, c.G, c.B, c.A)
}
