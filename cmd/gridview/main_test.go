package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
)

const dashboard = `border = "rounded"

[[columns]]
min = 0
weight = 3

[[columns]]
min = 2
weight = 1

[[rows]]
weight = 1

[[rows]]
weight = 1

[[rows]]
weight = 1

[[rows]]
weight = 1

[[widgets]]
label = "log"
x = 0
y = 1
width = 2
height = 2
`

func writeDefinition(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GRID_DEBUG", "")
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func lines(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

func TestRender(t *testing.T) {
	path := writeDefinition(t, "dashboard.toml", dashboard)

	type tc struct {
		args []string
		env  map[string]string
		want string
	}

	tests := map[string]tc{
		"labels": {
			args: []string{"render", path, "--width", "20", "--height", "10"},
			want: lines(
				"╭───────────┬──────╮",
				"│           │      │",
				"│           │      │",
				"├───────────┴──────┤",
				"│log               │",
				"│                  │",
				"│                  │",
				"├───────────┬──────┤",
				"│           │      │",
				"╰───────────┴──────╯",
			),
		},
		"border flag and no labels": {
			args: []string{"render", path, "--width", "10", "--height", "5", "--border", "double", "--no-labels"},
			want: lines(
				"╔════╦═══╗",
				"╠════╩═══╣",
				"║        ║",
				"╠════╦═══╣",
				"╚════╩═══╝",
			),
		},
		"size from environment": {
			args: []string{"render", path, "--border", "none"},
			env:  map[string]string{"GRIDVIEW_WIDTH": "6", "GRIDVIEW_HEIGHT": "2"},
			want: lines("", ""),
		},
		"flag beats environment": {
			args: []string{"render", path, "--width", "10", "--height", "5", "--border", "thick", "--no-labels"},
			env:  map[string]string{"GRIDVIEW_BORDER": "none"},
			want: lines(
				"┏━━━━┳━━━┓",
				"┣━━━━┻━━━┫",
				"┃        ┃",
				"┣━━━━┳━━━┫",
				"┗━━━━┻━━━┛",
			),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := execute(t, context.Background(), tt.args...)
			if err != nil {
				t.Fatalf("render error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("render output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	path := writeDefinition(t, "dashboard.toml", dashboard)

	type tc struct {
		args    []string
		wantErr string
	}

	tests := map[string]tc{
		"missing file": {
			args:    []string{"render", filepath.Join(t.TempDir(), "nope.toml")},
			wantErr: "reading grid definition",
		},
		"bad border": {
			args:    []string{"render", path, "--border", "dotted"},
			wantErr: "unknown border style",
		},
		"bad log level": {
			args:    []string{"render", path, "--log-level", "loud"},
			wantErr: "loud",
		},
		"no file": {
			args:    []string{"render"},
			wantErr: "accepts 1 arg",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, context.Background(), tt.args...)
			if err == nil {
				t.Fatalf("render error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("render error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	got, err := execute(t, context.Background(), "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if want := "gridview version " + version + "\n"; got != want {
		t.Errorf("version = %q, want %q", got, want)
	}
}

func TestDrawLabels(t *testing.T) {
	g := grid.New(
		grid.WithColumns(grid.Fixed(4), grid.Fixed(2)),
		grid.WithRows(grid.Fixed(1)),
	)
	buf := grid.NewBuffer(10, 3)
	g.Render(buf.Rect(), buf)
	drawLabels(buf, g.Layout(buf.Rect()), []config.Widget{
		{Label: "status", X: 0, Y: 0, Width: 1, Height: 1},
		{Label: "ok", X: 1, Y: 0, Width: 1, Height: 1},
		{Label: "", X: 0, Y: 0, Width: 2, Height: 1},
		{Label: "gone", X: 5, Y: 5, Width: 1, Height: 1},
	})

	want := strings.Join([]string{
		"┌────┬──┐",
		"│sta…│ok│",
		"└────┴──┘",
	}, "\n")
	if diff := cmp.Diff(want, buf.StringTrimmed()); diff != "" {
		t.Errorf("drawLabels() mismatch (-want +got):\n%s", diff)
	}
}

func newShowScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

func screenLines(s tcell.Screen) []string {
	w, h := s.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			sb.WriteRune(r)
		}
		rows[y] = sb.String()
	}
	return rows
}

func TestRunShow(t *testing.T) {
	f, err := config.Parse([]byte(dashboard), config.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	type tc struct {
		inject func(s tcell.SimulationScreen)
		want   []string
	}

	tests := map[string]tc{
		"quit on q": {
			inject: func(s tcell.SimulationScreen) {
				s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
			},
			want: []string{
				"╭──┬───╮",
				"├──┴───┤",
				"│log   │",
				"├──┬───┤",
				"╰──┴───╯",
			},
		},
		"quit on escape": {
			inject: func(s tcell.SimulationScreen) {
				s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
			},
			want: []string{
				"╭──┬───╮",
				"├──┴───┤",
				"│log   │",
				"├──┬───┤",
				"╰──┴───╯",
			},
		},
		"redraw on resize": {
			inject: func(s tcell.SimulationScreen) {
				s.SetSize(10, 5)
				s.PostEvent(tcell.NewEventResize(10, 5))
				s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
			},
			want: []string{
				"╭────┬───╮",
				"├────┴───┤",
				"│log     │",
				"├────┬───┤",
				"╰────┴───╯",
			},
		},
		"interrupt": {
			inject: func(s tcell.SimulationScreen) {
				s.PostEvent(tcell.NewEventInterrupt(nil))
			},
			want: []string{
				"╭──┬───╮",
				"├──┴───┤",
				"│log   │",
				"├──┬───┤",
				"╰──┴───╯",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := f.Build()
			if err != nil {
				t.Fatal(err)
			}
			screen := newShowScreen(t, 8, 5)
			tt.inject(screen)

			if err := runShow(screen, f, g, true); err != nil {
				t.Fatalf("runShow() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, screenLines(screen)); diff != "" {
				t.Errorf("screen mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShow_Cancelled(t *testing.T) {
	path := writeDefinition(t, "dashboard.yaml", `
columns:
  - {weight: 1}
rows:
  - {weight: 1}
`)

	screen := tcell.NewSimulationScreen("UTF-8")
	prev := newScreen
	newScreen = func() (tcell.Screen, error) { return screen, nil }
	t.Cleanup(func() { newScreen = prev })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := execute(t, ctx, "show", path); err != nil {
		t.Fatalf("show error = %v", err)
	}
}
