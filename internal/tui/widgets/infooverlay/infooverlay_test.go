package infooverlay

import (
	"strings"
	"testing"

	"evalbench/internal/tui/theme"
)

func TestRegionContains(t *testing.T) {
	r := Region{X: 10, Y: 5, W: 20, H: 8}
	inside := [][2]int{{10, 5}, {29, 12}, {15, 8}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Fatalf("expected (%d,%d) inside region", p[0], p[1])
		}
	}
	outside := [][2]int{{9, 5}, {30, 5}, {10, 4}, {10, 13}, {0, 0}}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Fatalf("expected (%d,%d) outside region", p[0], p[1])
		}
	}
}

func TestRenderCentersContentRegion(t *testing.T) {
	o := New("0.1.0")
	view, region := o.Render(120, 40, theme.LightPalette())
	if view == "" {
		t.Fatalf("expected non-empty view")
	}
	if region.W <= 0 || region.H <= 0 {
		t.Fatalf("expected positive region dimensions, got %+v", region)
	}
	if region.X <= 0 || region.Y <= 0 {
		t.Fatalf("expected centered region on a large screen, got %+v", region)
	}
	// Center of the region must hit-test as content.
	if !region.Contains(region.X+region.W/2, region.Y+region.H/2) {
		t.Fatalf("region center must be inside the region")
	}
	// The screen corner is backdrop.
	if region.Contains(0, 0) {
		t.Fatalf("screen corner must be backdrop, not content")
	}
}

func TestRenderMentionsProductInfo(t *testing.T) {
	o := New("0.1.0")
	view, _ := o.Render(100, 30, theme.DarkPalette())
	if !strings.Contains(view, "evalbench 0.1.0") {
		t.Fatalf("expected title in overlay view")
	}
	if !strings.Contains(view, "workbench") {
		t.Fatalf("expected product description in overlay view")
	}
}
