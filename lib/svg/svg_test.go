package svg

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	got := EscapeText(`a<b>&"c"`)
	if strings.ContainsAny(got, `<>"`) {
		t.Fatalf("expected escaped output, got %s", got)
	}
}

func TestFloat(t *testing.T) {
	if Float(3.6) != "3.6" {
		t.Fatalf("expected 3.6, got %s", Float(3.6))
	}
	if Float(40) != "40" {
		t.Fatalf("expected 40, got %s", Float(40))
	}
	if Float(1.0/3.0) != "0.3333" {
		t.Fatalf("expected 0.3333, got %s", Float(1.0/3.0))
	}
}

func TestElementOmitsUnset(t *testing.T) {
	el := NewElement("circle")
	el.Cx = 20
	el.Cy = 20.5
	el.R = 3.6
	el.Fill = "#2b2620"

	got := el.Render()
	want := `<circle cx="20" cy="20.5" r="3.6" fill="#2b2620" />`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestElementContent(t *testing.T) {
	el := NewElement("rect")
	el.X = 0
	el.Y = 0
	el.Width = 40
	el.Height = 40
	el.Content = `<animate attributeName="opacity" />`

	got := el.Render()
	if !strings.HasPrefix(got, "<rect ") || !strings.HasSuffix(got, "</rect>") {
		t.Fatalf("expected wrapped content, got %s", got)
	}
	if !strings.Contains(got, "animate") {
		t.Fatalf("expected child content, got %s", got)
	}
}
