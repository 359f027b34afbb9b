package ui

import (
	"strings"
	"testing"

	"github.com/five82/podium/internal/state"
)

func TestOverlay_DrawsOverTopRight(t *testing.T) {
	got := overlay("aaaaaa\nbbbbbb\ncccccc", "XY\nZW", 6)
	want := "aaaaXY\nbbbbZW\ncccccc"
	if got != want {
		t.Fatalf("overlay = %q, want %q", got, want)
	}
}

func TestOverlay_PadsShortLines(t *testing.T) {
	got := overlay("a", "XY\nZW", 5)
	want := "a  XY\n   ZW"
	if got != want {
		t.Fatalf("overlay = %q, want %q", got, want)
	}
}

func TestComposeLayout(t *testing.T) {
	body := "body\nbody"
	box := "[w]\n[w]"

	tests := []struct {
		name  string
		snap  state.Snapshot
		width int
		want  string
	}{
		{
			name:  "sidebar",
			snap:  state.Snapshot{Placement: state.PlacementEmbedded, HostID: ContainerSidebar},
			width: 120,
			want:  "body[w]\nbody[w]",
		},
		{
			name:  "bottom",
			snap:  state.Snapshot{Placement: state.PlacementEmbedded, HostID: ContainerBottom},
			width: 120,
			want:  "body\nbody\n[w] \n[w] ",
		},
		{
			name:  "narrow sidebar floats",
			snap:  state.Snapshot{Placement: state.PlacementEmbedded, HostID: ContainerSidebar},
			width: 7,
			want:  "body[w]\nbody[w]",
		},
		{
			name:  "overlay",
			snap:  state.Snapshot{Placement: state.PlacementOverlay},
			width: 8,
			want:  "body [w]\nbody [w]",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := composeLayout(tc.snap, body, box, tc.width, 2); got != tc.want {
				t.Fatalf("composeLayout = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestComposeLayout_HiddenWidgetLeavesBody(t *testing.T) {
	if got := composeLayout(state.Snapshot{}, "body", "", 80, 1); got != "body" {
		t.Fatalf("composeLayout = %q", got)
	}
}

func TestLayoutHost_InstallsStylesheetOnce(t *testing.T) {
	host := newLayoutHost()
	host.EnsureStylesheet("leaderboard-styles")
	host.EnsureStylesheet("leaderboard-styles")
	host.EnsureStylesheet("other")

	if got := strings.Join(host.Stylesheets(), ","); got != "leaderboard-styles,other" {
		t.Fatalf("stylesheets = %q", got)
	}
	if host.installed["leaderboard-styles"] != 2 {
		t.Fatalf("install calls = %d, want 2", host.installed["leaderboard-styles"])
	}
	if !host.HasContainer(ContainerSidebar) || !host.HasContainer(ContainerBottom) || host.HasContainer("game-canvas") {
		t.Fatalf("unexpected container set")
	}
}
