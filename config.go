package dicesvg

import "golang.org/x/exp/slices"

const (
	// DefaultSize is the die edge length in SVG units when Config.Size
	// is unset.
	DefaultSize = 40

	DefaultSkin = "bone"

	// GlowPadding is the symmetric margin added around the die when a
	// glow effect is configured, so the blurred stroke is not clipped
	// at the canvas edge.
	GlowPadding = 24

	DefaultSparkleCount = 6
)

type Material string

const (
	MaterialSolid        Material = "solid"
	MaterialClearGlass   Material = "clearGlass"
	MaterialFrostedGlass Material = "frostedGlass"
	MaterialGhost        Material = "ghost"
)

type EffectType string

const (
	EffectGlow       EffectType = "glow"
	EffectAura       EffectType = "aura"
	EffectSparkles   EffectType = "sparkles"
	EffectRimMarquee EffectType = "rim-marquee"
)

type Strength string

const (
	StrengthLow  Strength = "low"
	StrengthHigh Strength = "high"
)

type AuraStyle string

const (
	AuraPulse    AuraStyle = "pulse"
	AuraElectric AuraStyle = "electric"
)

// Effect is one visual overlay layered behind or above the face
// paint. Which fields apply depends on Type.
type Effect struct {
	Type EffectType `json:"type"`

	// Style selects the aura animation.
	Style AuraStyle `json:"style,omitempty"`
	// Strength scales blur radius, stroke width and opacity for glow
	// and aura. Anything other than "high" is treated as low.
	Strength Strength `json:"strength,omitempty"`
	// Color overrides the effect kind's default color.
	Color string `json:"color,omitempty"`
	// Count is the number of sparkle points.
	Count int `json:"count,omitempty"`
}

// Config describes one die face render. The zero value of every
// field has a usable default except Value, which callers must set to
// 1 through 6. Values outside that range are a caller error and are
// rendered as-is with no pips guaranteed.
type Config struct {
	Size     int      `json:"size,omitempty"`
	Value    int      `json:"value"`
	Skin     string   `json:"skin,omitempty"`
	Material Material `json:"material,omitempty"`
	// Tint is only consulted by the translucent and ghost materials.
	Tint    string   `json:"tint,omitempty"`
	Effects []Effect `json:"effects,omitempty"`
}

func (c Config) normalized() Config {
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.Skin == "" {
		c.Skin = DefaultSkin
	}
	if c.Material == "" {
		c.Material = MaterialSolid
	}
	return c
}

// HasEffect reports whether any configured effect is of the given
// kind.
func (c Config) HasEffect(t EffectType) bool {
	return slices.IndexFunc(c.Effects, func(ef Effect) bool { return ef.Type == t }) >= 0
}
