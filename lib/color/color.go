// Package color holds the color math for die faces: hex mixing for
// gradient stops and HSL-based lighten/darken for the glass materials.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	Black = "#000000"
	White = "#ffffff"

	// Special
	Empty = ""
	None  = "none"
)

// Mix blends two colors channel-by-channel in integer RGB space.
// amount=0 yields a, amount=1 yields b.
func Mix(a, b string, amount float64) (string, error) {
	ca, err := csscolorparser.Parse(a)
	if err != nil {
		return "", err
	}
	cb, err := csscolorparser.Parse(b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x",
		lerpChannel(ca.R, cb.R, amount),
		lerpChannel(ca.G, cb.G, amount),
		lerpChannel(ca.B, cb.B, amount),
	), nil
}

func lerpChannel(a, b, amount float64) int {
	return int(math.Round((a + (b-a)*amount) * 255))
}

func Darken(colorString string) (string, error) {
	return shiftLuminance(colorString, -.1)
}

func Lighten(colorString string) (string, error) {
	return shiftLuminance(colorString, .1)
}

func shiftLuminance(colorString string, delta float64) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return colorful.Hsl(h, s, l+delta).Clamped().Hex(), nil
}
