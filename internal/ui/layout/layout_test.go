package layout

import (
	"strings"
	"testing"
)

func TestSplitWidths(t *testing.T) {
	tests := []struct {
		width       int
		wantMain    int
		wantSidebar int
	}{
		{160, 160 - SidebarWidth, SidebarWidth},
		{100, 100 - CompactSidebarWidth, CompactSidebarWidth},
		{10, 0, CompactSidebarWidth},
	}
	for _, tt := range tests {
		main, sidebar := SplitWidths(tt.width)
		if main != tt.wantMain || sidebar != tt.wantSidebar {
			t.Errorf("SplitWidths(%d) = (%d, %d), want (%d, %d)",
				tt.width, main, sidebar, tt.wantMain, tt.wantSidebar)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) {
		t.Error("79 columns should be too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("80x24 should fit")
	}
}

func TestRenderHeaderIncludesParts(t *testing.T) {
	h := RenderHeader("Practice", "dana", 100)
	for _, want := range []string{"Lingo", "Practice", "dana"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooterHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Tab", Description: "Switch pane"}}, 80)
	if !strings.Contains(f, "Tab") || !strings.Contains(f, "Switch pane") {
		t.Errorf("footer missing hint: %q", f)
	}
}
