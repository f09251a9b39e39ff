package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
)

// viewOptions holds the flags shared by render and show.
type viewOptions struct {
	border   string
	noLabels bool
}

func (o *viewOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.border, "border", "", "Override the border style (none, single, double, rounded, thick)")
	cmd.Flags().BoolVar(&o.noLabels, "no-labels", false, "Do not draw widget labels")
}

// load reads the definition at path and builds its grid.
func (o *viewOptions) load(path string, logLevel string) (*config.File, *grid.Grid, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger, err := buildLogger(logLevel)
	if err != nil {
		return nil, nil, err
	}
	opts := []grid.Option{grid.WithLogger(logger.WithName("grid"))}
	if o.border != "" {
		border, err := grid.ParseBorderStyle(o.border)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, grid.WithBorder(border))
	}
	g, err := f.Build(opts...)
	if err != nil {
		return nil, nil, err
	}
	return f, g, nil
}

func newRenderCommand(logLevel *string) *cobra.Command {
	var opts viewOptions
	var width, height int
	var trim bool

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print a grid definition laid out at a fixed size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, g, err := opts.load(args[0], *logLevel)
			if err != nil {
				return err
			}
			w, h := defaultSize(width, height)
			return renderTo(cmd.OutOrStdout(), f, g, w, h, trim, !opts.noLabels)
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Width in cells (default: terminal width, or 80)")
	cmd.Flags().IntVar(&height, "height", 0, "Height in cells (default: terminal height, or 24)")
	cmd.Flags().BoolVar(&trim, "trim", true, "Strip trailing spaces from each line")
	return cmd
}

func renderTo(w io.Writer, f *config.File, g *grid.Grid, width, height int, trim, labels bool) error {
	buf := grid.NewBuffer(width, height)
	region := buf.Rect()
	g.Render(region, buf)
	if labels {
		drawLabels(buf, g.Layout(region), f.Widgets)
	}

	out := buf.String()
	if trim {
		out = buf.StringTrimmed()
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
