// Package main provides gridview, a command for previewing grid definitions.
//
// Usage:
//
//	gridview render <file>    Print the grid to stdout
//	gridview show <file>      Draw the grid on the terminal until q, Esc or Ctrl-C
//	gridview version          Print version information
//
// Grid definitions are TOML (.toml) or YAML (.yaml, .yml) files listing
// columns, rows and widgets. Flags can also be set from GRIDVIEW_* variables,
// e.g. GRIDVIEW_WIDTH=120.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-grid/internal/logging"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logLevel := "info"
	cmd := &cobra.Command{
		Use:           "gridview",
		Short:         "Preview weighted grid layouts in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")

	renderCmd := newRenderCommand(&logLevel)
	showCmd := newShowCommand(&logLevel)
	cmd.AddCommand(renderCmd, showCmd, newVersionCommand())
	cmd.Example = `  # Print a grid definition at 60x20
  gridview render dashboard.toml --width 60 --height 20

  # Draw it live, following terminal resizes
  gridview show dashboard.yaml --border double`

	bindViper(cmd, renderCmd, showCmd)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridview version %s\n", version)
		},
	}
}

// bindViper lets GRIDVIEW_* environment variables supply flags that were not
// set on the command line.
func bindViper(commands ...*cobra.Command) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("GRIDVIEW")
	v.AutomaticEnv()

	for _, cmd := range commands {
		prev := cmd.PreRunE
		cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
			for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
				if err := v.BindPFlags(fs); err != nil {
					return err
				}
				var setErr error
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed || !v.IsSet(f.Name) || setErr != nil {
						return
					}
					if val := fmt.Sprintf("%v", v.Get(f.Name)); val != "" && val != f.Value.String() {
						if err := f.Value.Set(val); err != nil {
							setErr = fmt.Errorf("invalid GRIDVIEW_%s: %w", strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err)
						}
					}
				})
				if setErr != nil {
					return setErr
				}
			}
			if prev != nil {
				return prev(cmd, args)
			}
			return nil
		}
	}
}

// buildLogger prefers the GRID_DEBUG file log when it is configured.
func buildLogger(level string) (logr.Logger, error) {
	if os.Getenv(logging.EnvDebug) != "" {
		return logging.FromEnv(), nil
	}
	return logging.New(level)
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
}
