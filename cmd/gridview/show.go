package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
)

// newScreen creates the terminal screen; tests replace it with a simulation.
var newScreen = tcell.NewScreen

func newShowCommand(logLevel *string) *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Draw a grid definition on the terminal, following resizes",
		Long:  "Draw a grid definition over the whole terminal. The layout is recomputed when the terminal is resized. Press q, Esc or Ctrl-C to quit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, g, err := opts.load(args[0], *logLevel)
			if err != nil {
				return err
			}
			screen, err := newScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			go func() {
				<-cmd.Context().Done()
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			}()
			return runShow(screen, f, g, !opts.noLabels)
		},
	}
	opts.bind(cmd)
	return cmd
}

// runShow draws g on an initialised screen until a quit key or an
// interrupt event arrives.
func runShow(screen tcell.Screen, f *config.File, g *grid.Grid, labels bool) error {
	surface := grid.NewScreenSurface(screen)
	draw := func() {
		screen.Clear()
		region := surface.Region()
		g.Render(region, surface)
		if labels {
			drawLabels(surface, g.Layout(region), f.Widgets)
		}
		screen.Show()
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}
