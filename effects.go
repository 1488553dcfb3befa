package dicesvg

import (
	"fmt"
	"math/rand"
	"strings"

	"oss.pipworks.com/dicesvg/lib/geo"
	"oss.pipworks.com/dicesvg/lib/svg"
)

const (
	glowDefaultColor    = "#fbbf24"
	auraDefaultColor    = "#8b5cf6"
	sparkleDefaultColor = "#ffffff"
	marqueeDefaultColor = "#ffffff"
)

func strengthParams(s Strength) (blur, width, opacity float64) {
	if s == StrengthHigh {
		return 8, 6, 0.9
	}
	return 4, 3, 0.6
}

// glowOverlay traces the die outline with a blurred stroke. Drawn
// behind the face; the composer adds canvas padding so the blur is
// not clipped.
func glowOverlay(die *geo.Box, radius float64, ef Effect, id string) string {
	blur, width, opacity := strengthParams(ef.Strength)
	c := ef.Color
	if c == "" {
		c = glowDefaultColor
	}

	defs := fmt.Sprintf("<defs>%s</defs>", blurFilter(id, blur))

	el := roundedRect(die, radius)
	el.Fill = "none"
	el.Stroke = c
	el.StrokeWidth = width
	el.Opacity = opacity
	el.Filter = fmt.Sprintf("url(#%s)", id)

	return defs + el.Render()
}

// auraOverlay draws a blurred circular halo centered on the full
// canvas rather than the die bounds.
func auraOverlay(canvas *geo.Box, ef Effect, id string) string {
	blur, width, opacity := strengthParams(ef.Strength)
	c := ef.Color
	if c == "" {
		c = auraDefaultColor
	}

	var defs string
	switch ef.Style {
	case AuraElectric:
		defs = fmt.Sprintf(
			`<defs><filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+
				`<feTurbulence type="turbulence" baseFrequency="0.05" numOctaves="2" result="noise" />`+
				`<feDisplacementMap in="SourceGraphic" in2="noise" scale="8" />`+
				`<feGaussianBlur stdDeviation="%s" />`+
				`</filter></defs>`,
			id, svg.Float(blur/2))
	default:
		defs = fmt.Sprintf("<defs>%s</defs>", blurFilter(id, blur))
	}

	center := canvas.Center()
	el := svg.NewElement("circle")
	el.Cx = center.X
	el.Cy = center.Y
	el.R = canvas.Width * 0.3
	el.Fill = "none"
	el.Stroke = c
	el.StrokeWidth = width
	el.Opacity = opacity
	el.Filter = fmt.Sprintf("url(#%s)", id)

	if ef.Style == AuraPulse {
		el.Content = fmt.Sprintf(
			`<animate attributeName="opacity" values="%s;%s;%s" dur="2s" repeatCount="indefinite" />`,
			svg.Float(opacity), svg.Float(opacity*0.3), svg.Float(opacity))
	}

	return defs + el.Render()
}

// sparklesOverlay scatters small fading circles across the padded
// bounds. Placement and animation phase come from the caller's
// random source so renders can be made deterministic.
func sparklesOverlay(bounds *geo.Box, ef Effect, rnd *rand.Rand) string {
	n := ef.Count
	if n <= 0 {
		n = DefaultSparkleCount
	}
	c := ef.Color
	if c == "" {
		c = sparkleDefaultColor
	}
	r := bounds.Width * 0.04

	var sb strings.Builder
	for i := 0; i < n; i++ {
		el := svg.NewElement("circle")
		el.Cx = bounds.TopLeft.X + rnd.Float64()*bounds.Width
		el.Cy = bounds.TopLeft.Y + rnd.Float64()*bounds.Height
		el.R = r
		el.Fill = c
		el.Opacity = 0
		el.Content = fmt.Sprintf(
			`<animate attributeName="opacity" values="0;1;0" dur="1.6s" begin="%.2fs" repeatCount="indefinite" />`,
			rnd.Float64()*1.5)
		sb.WriteString(el.Render())
	}
	return sb.String()
}

// marqueeOverlay traces the die outline with an animated dashed
// stroke. The only effect drawn above the pips.
func marqueeOverlay(die *geo.Box, radius float64, ef Effect) string {
	c := ef.Color
	if c == "" {
		c = marqueeDefaultColor
	}
	dash := die.Width / 10

	el := roundedRect(die, radius)
	el.Fill = "none"
	el.Stroke = c
	el.StrokeWidth = 2
	el.StrokeDasharray = fmt.Sprintf("%s %s", svg.Float(dash), svg.Float(dash))
	el.Content = fmt.Sprintf(
		`<animate attributeName="stroke-dashoffset" from="0" to="%s" dur="1s" repeatCount="indefinite" />`,
		svg.Float(-2*dash))

	return el.Render()
}
