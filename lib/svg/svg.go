// Package svg builds individual SVG elements as strings.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
)

func EscapeText(text string) string {
	buf := new(bytes.Buffer)
	_ = xml.EscapeText(buf, []byte(text))
	return buf.String()
}

func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// Float renders a coordinate without trailing zeros.
func Float(f float64) string {
	return strconv.FormatFloat(chopPrecision(f), 'f', -1, 64)
}

// Element is a helper for emitting one SVG element. Numeric fields
// left unset are omitted from the output, so the same type serves
// rects, circles and lines.
type Element struct {
	Tag string

	X      float64
	Y      float64
	Width  float64
	Height float64
	R      float64
	Rx     float64
	Cx     float64
	Cy     float64

	Fill            string
	Stroke          string
	StrokeWidth     float64
	StrokeDasharray string
	Opacity         float64
	Filter          string
	Transform       string
	Style           string

	Content string
}

const unset = math.MaxFloat64

func NewElement(tag string) *Element {
	return &Element{
		Tag:         tag,
		X:           unset,
		Y:           unset,
		Width:       unset,
		Height:      unset,
		R:           unset,
		Rx:          unset,
		Cx:          unset,
		Cy:          unset,
		StrokeWidth: unset,
		Opacity:     unset,
	}
}

func (el *Element) SetTranslate(x, y float64) {
	el.Transform = fmt.Sprintf("translate(%s %s)", Float(x), Float(y))
}

func (el *Element) Render() string {
	out := "<" + el.Tag

	if el.X != unset {
		out += fmt.Sprintf(` x="%s"`, Float(el.X))
	}
	if el.Y != unset {
		out += fmt.Sprintf(` y="%s"`, Float(el.Y))
	}
	if el.Width != unset {
		out += fmt.Sprintf(` width="%s"`, Float(el.Width))
	}
	if el.Height != unset {
		out += fmt.Sprintf(` height="%s"`, Float(el.Height))
	}
	if el.R != unset {
		out += fmt.Sprintf(` r="%s"`, Float(el.R))
	}
	if el.Rx != unset {
		out += fmt.Sprintf(` rx="%s"`, Float(el.Rx))
	}
	if el.Cx != unset {
		out += fmt.Sprintf(` cx="%s"`, Float(el.Cx))
	}
	if el.Cy != unset {
		out += fmt.Sprintf(` cy="%s"`, Float(el.Cy))
	}

	if len(el.Fill) > 0 {
		out += fmt.Sprintf(` fill="%s"`, el.Fill)
	}
	if len(el.Stroke) > 0 {
		out += fmt.Sprintf(` stroke="%s"`, el.Stroke)
	}
	if el.StrokeWidth != unset {
		out += fmt.Sprintf(` stroke-width="%s"`, Float(el.StrokeWidth))
	}
	if len(el.StrokeDasharray) > 0 {
		out += fmt.Sprintf(` stroke-dasharray="%s"`, el.StrokeDasharray)
	}
	if el.Opacity != unset {
		out += fmt.Sprintf(` opacity="%s"`, Float(el.Opacity))
	}
	if len(el.Filter) > 0 {
		out += fmt.Sprintf(` filter="%s"`, el.Filter)
	}
	if len(el.Transform) > 0 {
		out += fmt.Sprintf(` transform="%s"`, el.Transform)
	}
	if len(el.Style) > 0 {
		out += fmt.Sprintf(` style="%s"`, el.Style)
	}

	if len(el.Content) > 0 {
		return fmt.Sprintf("%s>%s</%s>", out, el.Content, el.Tag)
	}
	return out + " />"
}
