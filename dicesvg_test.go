package dicesvg_test

import (
	"regexp"
	"strings"
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"oss.pipworks.com/dicesvg"
	"oss.pipworks.com/dicesvg/diceskins"
)

func salted(s string) *dicesvg.RenderOpts {
	return &dicesvg.RenderOpts{Salt: &s}
}

func TestPipCountPerValue(t *testing.T) {
	for value := 1; value <= 6; value++ {
		out := dicesvg.Render(dicesvg.Config{Value: value}, salted("t"))
		// solid material with no effects draws circles only for pips
		tassert.Equal(t, value, strings.Count(out, "<circle"), "value %d", value)
	}
}

func TestUnknownSkinFallsBack(t *testing.T) {
	known := dicesvg.Render(dicesvg.Config{Value: 3, Skin: "bone"}, salted("t"))
	unknown := dicesvg.Render(dicesvg.Config{Value: 3, Skin: "definitely-not-a-skin"}, salted("t"))
	tassert.Equal(t, known, unknown)
}

func TestCanvasPadding(t *testing.T) {
	plain := dicesvg.Render(dicesvg.Config{Value: 2}, salted("t"))
	tassert.Contains(t, plain, `width="40" height="40"`)
	tassert.Contains(t, plain, `viewBox="0 0 40 40"`)

	glowing := dicesvg.Render(dicesvg.Config{
		Value:   2,
		Effects: []dicesvg.Effect{{Type: dicesvg.EffectGlow}},
	}, salted("t"))
	tassert.Contains(t, glowing, `width="88" height="88"`)
	tassert.Contains(t, glowing, `viewBox="0 0 88 88"`)
}

func TestDrawOrder(t *testing.T) {
	out := dicesvg.Render(dicesvg.Config{
		Value: 3,
		Effects: []dicesvg.Effect{
			{Type: dicesvg.EffectRimMarquee},
			{Type: dicesvg.EffectGlow, Color: "#10b981"},
			{Type: dicesvg.EffectAura},
		},
	}, salted("t"))

	glowIdx := strings.Index(out, `stroke="#10b981"`)
	auraIdx := strings.Index(out, `<circle cx="44"`)
	faceIdx := strings.Index(out, `url(#face-`)
	pipIdx := strings.Index(out, `fill="`+diceskins.Bone.Pip)
	marqueeIdx := strings.Index(out, "stroke-dasharray")

	tassert.True(t, glowIdx >= 0 && auraIdx >= 0 && faceIdx >= 0 && pipIdx >= 0 && marqueeIdx >= 0,
		"missing fragment in %s", out)

	// glow and aura behind the face, pips over the face, marquee topmost
	// regardless of the order effects were listed in
	tassert.Less(t, glowIdx, faceIdx)
	tassert.Less(t, auraIdx, faceIdx)
	tassert.Less(t, faceIdx, pipIdx)
	tassert.Less(t, pipIdx, marqueeIdx)
}

func TestLocalDefsNamespaced(t *testing.T) {
	idRE := regexp.MustCompile(`face-dice-[0-9]+`)

	cfg := dicesvg.Config{Value: 4}
	a := idRE.FindString(dicesvg.Render(cfg, nil))
	b := idRE.FindString(dicesvg.Render(cfg, nil))

	tassert.NotEmpty(t, a)
	tassert.NotEmpty(t, b)
	tassert.NotEqual(t, a, b)
}

func TestUnknownEffectIgnored(t *testing.T) {
	plain := dicesvg.Render(dicesvg.Config{Value: 5}, salted("t"))
	withUnknown := dicesvg.Render(dicesvg.Config{
		Value:   5,
		Effects: []dicesvg.Effect{{Type: "confetti"}},
	}, salted("t"))
	tassert.Equal(t, plain, withUnknown)
}

func TestSparkles(t *testing.T) {
	var seed int64 = 7
	salt := "t"
	opts := &dicesvg.RenderOpts{Salt: &salt, Seed: &seed}

	cfg := dicesvg.Config{
		Value:   1,
		Effects: []dicesvg.Effect{{Type: dicesvg.EffectSparkles, Count: 9}},
	}
	out := dicesvg.Render(cfg, opts)
	tassert.Equal(t, 9, strings.Count(out, `values="0;1;0"`))

	// same salt and seed reproduce the exact document
	tassert.Equal(t, out, dicesvg.Render(cfg, opts))
}

func TestAuraStyles(t *testing.T) {
	pulse := dicesvg.Render(dicesvg.Config{
		Value:   1,
		Effects: []dicesvg.Effect{{Type: dicesvg.EffectAura, Style: dicesvg.AuraPulse}},
	}, salted("t"))
	tassert.Contains(t, pulse, `attributeName="opacity"`)

	electric := dicesvg.Render(dicesvg.Config{
		Value:   1,
		Effects: []dicesvg.Effect{{Type: dicesvg.EffectAura, Style: dicesvg.AuraElectric}},
	}, salted("t"))
	tassert.Contains(t, electric, "feDisplacementMap")
}

func TestGhostBlurTracksGlowStrength(t *testing.T) {
	ghost := func(effects []dicesvg.Effect) string {
		return dicesvg.Render(dicesvg.Config{
			Value:    1,
			Material: dicesvg.MaterialGhost,
			Effects:  effects,
		}, salted("t"))
	}

	tassert.Contains(t, ghost(nil), `stdDeviation="2"`)
	tassert.Contains(t,
		ghost([]dicesvg.Effect{{Type: dicesvg.EffectGlow, Strength: dicesvg.StrengthHigh}}),
		`stdDeviation="6"`)
	tassert.Contains(t,
		ghost([]dicesvg.Effect{{Type: dicesvg.EffectGlow, Strength: dicesvg.StrengthLow}}),
		`stdDeviation="3"`)
}

func TestFrostedGlassGrain(t *testing.T) {
	out := dicesvg.Render(dicesvg.Config{
		Value:    2,
		Material: dicesvg.MaterialFrostedGlass,
		Tint:     "#10b981",
	}, salted("t"))
	tassert.Contains(t, out, "fractalNoise")
	tassert.Contains(t, out, "soft-light")

	clear := dicesvg.Render(dicesvg.Config{
		Value:    2,
		Material: dicesvg.MaterialClearGlass,
		Tint:     "#10b981",
	}, salted("t"))
	tassert.NotContains(t, clear, "fractalNoise")
}

func TestSolidBoneSixEndToEnd(t *testing.T) {
	out := dicesvg.Render(dicesvg.Config{
		Size:     40,
		Value:    6,
		Skin:     "bone",
		Material: dicesvg.MaterialSolid,
	}, salted("t"))

	tassert.Contains(t, out, `width="40" height="40"`)
	tassert.Contains(t, out, `aria-label="Die showing 6"`)
	tassert.Contains(t, out, "<title>Die showing 6</title>")
	tassert.Equal(t, 6, strings.Count(out, "<circle"))
}

func TestGlowFallbackEndToEnd(t *testing.T) {
	out := dicesvg.Render(dicesvg.Config{
		Size:     40,
		Value:    1,
		Skin:     "unknown-skin-id",
		Material: dicesvg.MaterialSolid,
		Effects: []dicesvg.Effect{
			{Type: dicesvg.EffectGlow, Strength: dicesvg.StrengthHigh, Color: "#10b981"},
		},
	}, salted("t"))

	tassert.Contains(t, out, `width="88" height="88"`)
	tassert.Contains(t, out, `aria-label="Die showing 1"`)
	tassert.Equal(t, 1, strings.Count(out, "<circle"))
	// default skin colors after fallback
	tassert.Contains(t, out, diceskins.Bone.Face)
	// high strength glow: blur 8, drawn before the face paint
	tassert.Contains(t, out, `stdDeviation="8"`)
	tassert.Less(t, strings.Index(out, `stroke="#10b981"`), strings.Index(out, `url(#face-`))
}

func TestEnsureSharedDefsIdempotent(t *testing.T) {
	doc := dicesvg.EnsureSharedDefs("")
	doc = dicesvg.EnsureSharedDefs(doc)
	doc = dicesvg.EnsureSharedDefs(doc)

	tassert.Equal(t, 1, strings.Count(doc, dicesvg.SharedDefsID))
	tassert.Contains(t, doc, `id="dice-bevel"`)
	tassert.Contains(t, doc, `id="dice-pip-shadow"`)
	tassert.Contains(t, doc, `id="dice-grain"`)
	tassert.Contains(t, doc, `id="dice-glow-low"`)
	tassert.Contains(t, doc, `id="dice-glow-high"`)
	tassert.Contains(t, doc, `id="dice-displace"`)
}
