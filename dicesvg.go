// Package dicesvg renders six-sided die faces as self-contained SVG
// documents. A render is parameterized by a face value, a skin from
// the diceskins catalog, a material and an ordered list of effects;
// the output embeds every resource definition it references, so it
// can be dropped into any host page without setup.
package dicesvg

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"math/rand"

	"oss.terrastruct.com/xrand"

	"oss.pipworks.com/dicesvg/diceskins"
	"oss.pipworks.com/dicesvg/lib/geo"
)

// RenderOpts are optional and rarely needed outside tests. A nil
// *RenderOpts is valid.
type RenderOpts struct {
	// Salt replaces the random token used to namespace this render's
	// local resource ids, making the output deterministic.
	Salt *string
	// Seed fixes the random source behind sparkle placement and
	// animation delays.
	Seed *int64
}

// Render produces one SVG document for cfg. It does not fail: an
// unrecognized skin degrades to the default skin and unrecognized
// effect kinds render nothing.
func Render(cfg Config, opts *RenderOpts) string {
	cfg = cfg.normalized()
	skin := diceskins.Find(cfg.Skin)

	pad := 0.0
	if cfg.HasEffect(EffectGlow) {
		pad = GlowPadding
	}
	size := float64(cfg.Size)
	canvas := size + 2*pad

	ns := namespace(opts)
	rnd := randSource(opts)

	die := geo.NewBox(geo.NewPoint(pad, pad), size, size)
	full := geo.NewBox(geo.NewPoint(0, 0), canvas, canvas)
	radius := size * 0.2

	// Effects are partitioned by kind, not by list order: glow, aura
	// and sparkles always sit behind the face so they can never
	// obscure pips, and the rim marquee is always the topmost layer.
	var behind, above bytes.Buffer
	for i, ef := range cfg.Effects {
		id := fmt.Sprintf("fx%d-%s", i, ns)
		switch ef.Type {
		case EffectGlow:
			behind.WriteString(glowOverlay(die, radius, ef, id))
		case EffectAura:
			behind.WriteString(auraOverlay(full, ef, id))
		case EffectSparkles:
			behind.WriteString(sparklesOverlay(full, ef, rnd))
		case EffectRimMarquee:
			above.WriteString(marqueeOverlay(die, radius, ef))
		default:
			// unknown effect kinds are a forward-compatible no-op
		}
	}

	face, defs := paintFace(cfg, skin, die, radius, ns)

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="Die showing %d">`,
		int(canvas), int(canvas), int(canvas), int(canvas), cfg.Value)
	fmt.Fprintf(buf, "<title>Die showing %d</title>", cfg.Value)
	buf.Write(behind.Bytes())
	if defs != "" {
		fmt.Fprintf(buf, "<defs>%s</defs>", defs)
	}
	buf.WriteString(face)
	buf.WriteString(renderPips(cfg.Value, skin, die))
	buf.Write(above.Bytes())
	buf.WriteString("</svg>")
	return buf.String()
}

// namespace returns the token suffixed onto every local resource id
// of one render, so that concurrently rendered dice never collide on
// definitions. Ids must not start with a digit, hence the prefix.
func namespace(opts *RenderOpts) string {
	salt := ""
	if opts != nil && opts.Salt != nil {
		salt = *opts.Salt
	} else {
		salt = xrand.Base64(8)
	}
	h := fnv.New32a()
	h.Write([]byte(salt))
	return fmt.Sprintf("dice-%d", h.Sum32())
}

func randSource(opts *RenderOpts) *rand.Rand {
	if opts != nil && opts.Seed != nil {
		return rand.New(rand.NewSource(*opts.Seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
