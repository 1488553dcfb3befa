package dicesvg

import (
	"fmt"

	"oss.pipworks.com/dicesvg/diceskins"
	"oss.pipworks.com/dicesvg/lib/color"
	"oss.pipworks.com/dicesvg/lib/geo"
	"oss.pipworks.com/dicesvg/lib/svg"
)

// paintFace dispatches to the configured material's painter and
// returns the face markup plus the local defs it references. Every
// local id carries the per-call namespace. An unrecognized material
// paints as solid, matching the skin fallback policy.
func paintFace(cfg Config, skin diceskins.Skin, die *geo.Box, radius float64, ns string) (face, defs string) {
	switch cfg.Material {
	case MaterialClearGlass:
		return paintGlass(cfg, skin, die, radius, ns, false)
	case MaterialFrostedGlass:
		return paintGlass(cfg, skin, die, radius, ns, true)
	case MaterialGhost:
		return paintGhost(cfg, skin, die, radius, ns)
	default:
		return paintSolid(skin, die, radius, ns)
	}
}

func roundedRect(b *geo.Box, radius float64) *svg.Element {
	el := svg.NewElement("rect")
	el.X = b.TopLeft.X
	el.Y = b.TopLeft.Y
	el.Width = b.Width
	el.Height = b.Height
	el.Rx = radius
	return el
}

// paintSolid fills the face with a vertical gradient toward a
// slightly darkened bottom edge and lays a bevel gradient over it in
// overlay blend mode.
func paintSolid(skin diceskins.Skin, die *geo.Box, radius float64, ns string) (string, string) {
	bottom, err := color.Mix(skin.Face, color.Black, 0.12)
	if err != nil {
		bottom = skin.Face
	}

	defs := fmt.Sprintf(
		`<linearGradient id="face-%s" x1="0" y1="0" x2="0" y2="1">`+
			`<stop offset="0%%" stop-color="%s" />`+
			`<stop offset="100%%" stop-color="%s" />`+
			`</linearGradient>`,
		ns, skin.Face, bottom)
	defs += bevelGradient("bevel-" + ns)

	face := roundedRect(die, radius)
	face.Fill = fmt.Sprintf("url(#face-%s)", ns)
	face.Stroke = skin.Edge
	face.StrokeWidth = 2

	bevel := roundedRect(die, radius)
	bevel.Fill = fmt.Sprintf("url(#bevel-%s)", ns)
	bevel.Style = "mix-blend-mode: overlay"

	return face.Render() + bevel.Render(), defs
}

// paintGlass is the shared painter for clearGlass and frostedGlass.
// The tint falls back to the skin's face color.
func paintGlass(cfg Config, skin diceskins.Skin, die *geo.Box, radius float64, ns string, frosted bool) (string, string) {
	base := cfg.Tint
	if base == "" {
		base = skin.Face
	}
	top, err := color.Lighten(base)
	if err != nil {
		top = base
	}
	bottom, err := color.Darken(base)
	if err != nil {
		bottom = base
	}
	rim := top

	defs := fmt.Sprintf(
		`<linearGradient id="glass-%s" x1="0" y1="0" x2="0" y2="1">`+
			`<stop offset="0%%" stop-color="%s" stop-opacity="0.35" />`+
			`<stop offset="100%%" stop-color="%s" stop-opacity="0.35" />`+
			`</linearGradient>`,
		ns, top, bottom)
	defs += fmt.Sprintf(
		`<linearGradient id="spec-%s" x1="0" y1="0" x2="1" y2="1">`+
			`<stop offset="35%%" stop-color="#ffffff" stop-opacity="0" />`+
			`<stop offset="50%%" stop-color="#ffffff" stop-opacity="0.9" />`+
			`<stop offset="65%%" stop-color="#ffffff" stop-opacity="0" />`+
			`</linearGradient>`,
		ns)

	face := roundedRect(die, radius)
	face.Fill = fmt.Sprintf("url(#glass-%s)", ns)
	face.Stroke = rim
	face.StrokeWidth = 1.5

	stripe := roundedRect(die, radius)
	stripe.Fill = fmt.Sprintf("url(#spec-%s)", ns)
	stripe.Opacity = 0.5
	stripe.Style = "mix-blend-mode: screen"

	out := face.Render() + stripe.Render()

	if frosted {
		defs += grainFilter("grain-" + ns)
		grain := roundedRect(die, radius)
		grain.Fill = color.White
		grain.Filter = fmt.Sprintf("url(#grain-%s)", ns)
		grain.Style = "mix-blend-mode: soft-light"
		out += grain.Render()
	}

	return out, defs
}

// paintGhost draws no fill, only two concentric rims: a blurred
// outer silhouette and a crisp inner stroke. The outer blur tracks
// the strength of a configured glow effect.
func paintGhost(cfg Config, skin diceskins.Skin, die *geo.Box, radius float64, ns string) (string, string) {
	base := cfg.Tint
	if base == "" {
		base = skin.Edge
	}

	blur := 2.0
	for _, ef := range cfg.Effects {
		if ef.Type != EffectGlow {
			continue
		}
		if ef.Strength == StrengthHigh {
			blur = 6
		} else {
			blur = 3
		}
		break
	}

	defs := blurFilter("ghost-blur-"+ns, blur)

	outer := roundedRect(die, radius)
	outer.Fill = color.None
	outer.Stroke = base
	outer.StrokeWidth = 3
	outer.Opacity = 0.8
	outer.Filter = fmt.Sprintf("url(#ghost-blur-%s)", ns)

	inner := roundedRect(die, radius)
	inner.Fill = color.None
	inner.Stroke = base
	inner.StrokeWidth = 1.5
	inner.Opacity = 0.85

	return outer.Render() + inner.Render(), defs
}

func bevelGradient(id string) string {
	return fmt.Sprintf(
		`<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+
			`<stop offset="0%%" stop-color="#ffffff" stop-opacity="0.55" />`+
			`<stop offset="45%%" stop-color="#ffffff" stop-opacity="0" />`+
			`<stop offset="100%%" stop-color="#000000" stop-opacity="0.35" />`+
			`</linearGradient>`,
		id)
}

func grainFilter(id string) string {
	return fmt.Sprintf(
		`<filter id="%s" x="0%%" y="0%%" width="100%%" height="100%%">`+
			`<feTurbulence type="fractalNoise" baseFrequency="0.8" numOctaves="2" result="noise" />`+
			`<feColorMatrix in="noise" type="matrix" values="0 0 0 0 1 0 0 0 0 1 0 0 0 0 1 0 0 0 0.3 0" result="mono" />`+
			`<feComposite in="mono" in2="SourceGraphic" operator="in" />`+
			`</filter>`,
		id)
}

func blurFilter(id string, stdDeviation float64) string {
	return fmt.Sprintf(
		`<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+
			`<feGaussianBlur stdDeviation="%s" in="SourceGraphic" />`+
			`</filter>`,
		id, svg.Float(stdDeviation))
}
