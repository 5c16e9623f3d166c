package render

import (
	"strings"
	"testing"
)

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?>
<svg width="100pt" height="50pt" viewBox="0.00 0.00 120.75 60.25" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	out := string(normalizeViewBox(svg))
	if !strings.Contains(out, `viewBox="0 0 120.75 60.25"`) {
		t.Errorf("viewBox not normalized:\n%s", out)
	}
	if !strings.Contains(out, `width="121" height="60"`) {
		t.Errorf("width/height not rewritten from viewBox:\n%s", out)
	}
}

func TestNormalizeViewBox_NoViewBox(t *testing.T) {
	svg := []byte(`<svg><g></g></svg>`)
	out := normalizeViewBox(svg)
	if string(out) != `<svg><g></g></svg>` {
		t.Errorf("svg without viewBox should pass through unchanged, got %s", out)
	}
}

func TestNormalizeViewBox_ZeroSize(t *testing.T) {
	svg := []byte(`<svg viewBox="0 0 0 0"></svg>`)
	out := normalizeViewBox(svg)
	if string(out) != `<svg viewBox="0 0 0 0"></svg>` {
		t.Errorf("zero-size viewBox should pass through unchanged, got %s", out)
	}
}
