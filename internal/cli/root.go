// Package cli implements the swatch command line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	service "github.com/okian/swatch/internal/app"
	"github.com/okian/swatch/internal/catalog"
	"github.com/okian/swatch/pkg/logger"
)

// Viper keys.
const (
	keyTable   = "table"
	keyJSON    = "json"
	keyVerbose = "verbose"
	keyColor   = "color"
)

// app carries the per-invocation state shared by subcommands.
type app struct {
	v   *viper.Viper
	svc *service.Service
}

// NewRootCommand builds the swatch command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "swatch",
		Short: "Match colors against a Pantone reference table",
		Long: `swatch finds the closest Pantone reference colors for hex values, searches
the reference table by code, name or family, and extracts dominant colors
from images.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String(keyTable, "", "reference table file (YAML/JSON); builtin table when empty")
	flags.Bool(keyJSON, false, "print results as JSON")
	flags.String(keyColor, "auto", "color swatches in text output: auto, always or never")
	flags.Bool(keyVerbose, false, "enable debug logging")

	for _, key := range []string{keyTable, keyJSON, keyColor, keyVerbose} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", key, err))
		}
	}
	a.v.SetEnvPrefix("SWATCH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.matchCmd(),
		a.nearestCmd(),
		a.complementCmd(),
		a.distanceCmd(),
		a.hslCmd(),
		a.searchCmd(),
		a.familyCmd(),
		a.tableCmd(),
		a.analyzeCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup initializes logging and loads the reference table.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := logger.InitWithOptions(logger.WithWriter(cmd.ErrOrStderr())); err != nil {
		return err
	}
	level := slog.LevelWarn
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	logger.SetLevel(level)

	svc, err := newService(cmd.Context(), a.v.GetString(keyTable), maxDimension(cmd))
	if err != nil {
		return err
	}
	a.svc = svc
	return nil
}

// newService builds a color service over the builtin table or a table file.
func newService(ctx context.Context, tablePath string, maxDim int) (*service.Service, error) {
	src := catalog.Source{Kind: catalog.SourceBuiltin}
	if tablePath != "" {
		src = catalog.Source{Kind: catalog.SourceFile, Path: tablePath}
	}
	table, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	opts := []service.Option{
		service.WithTable(table, src.Kind),
		service.WithLogger(logger.Get().Named("cli")),
	}
	if maxDim >= 0 {
		opts = append(opts, service.WithMaxDimension(maxDim))
	}
	return service.New(opts...)
}

// maxDimension reads the analyze command's downscale flag, or -1 when absent.
func maxDimension(cmd *cobra.Command) int {
	f := cmd.Flags().Lookup("max-dimension")
	if f == nil {
		return -1
	}
	n, err := cmd.Flags().GetInt("max-dimension")
	if err != nil {
		return -1
	}
	return n
}
