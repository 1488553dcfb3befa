package dicesvg

import (
	"fmt"
	"strings"
)

// SharedDefsID is the sentinel id on the shared <defs> fragment.
// Its presence in a host document marks the bootstrap as done.
const SharedDefsID = "dice-shared-defs"

// SharedDefs returns the document-level resource definitions that
// many dice on one page can share: the bevel gradient, a pip shadow,
// the frosting grain, both glow blurs and the electric displacement
// filter. Painters do not depend on it; each render embeds its own
// namespaced copies of what it uses. Hosts that pre-inject this
// fragment once simply make that duplication available for reuse.
func SharedDefs() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<defs id="%s">`, SharedDefsID)
	sb.WriteString(bevelGradient("dice-bevel"))
	sb.WriteString(pipShadowFilter("dice-pip-shadow"))
	sb.WriteString(grainFilter("dice-grain"))
	sb.WriteString(blurFilter("dice-glow-low", 4))
	sb.WriteString(blurFilter("dice-glow-high", 8))
	sb.WriteString(displaceFilter("dice-displace"))
	sb.WriteString(`</defs>`)
	return sb.String()
}

// EnsureSharedDefs appends the shared definitions to doc unless the
// sentinel id is already present. Calling it any number of times
// yields exactly one injected fragment.
func EnsureSharedDefs(doc string) string {
	if strings.Contains(doc, SharedDefsID) {
		return doc
	}
	return doc + SharedDefs()
}

func pipShadowFilter(id string) string {
	return fmt.Sprintf(
		`<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+
			`<feGaussianBlur stdDeviation="0.6" in="SourceAlpha" result="blur" />`+
			`<feOffset in="blur" dx="0" dy="0.5" result="offset" />`+
			`<feMerge><feMergeNode in="offset" /><feMergeNode in="SourceGraphic" /></feMerge>`+
			`</filter>`,
		id)
}

func displaceFilter(id string) string {
	return fmt.Sprintf(
		`<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+
			`<feTurbulence type="turbulence" baseFrequency="0.05" numOctaves="2" result="noise" />`+
			`<feDisplacementMap in="SourceGraphic" in2="noise" scale="8" />`+
			`</filter>`,
		id)
}
