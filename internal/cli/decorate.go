package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/livemark/internal/logging"
	"github.com/yaklabco/livemark/internal/ui/pretty"
	"github.com/yaklabco/livemark/pkg/config"
	"github.com/yaklabco/livemark/pkg/decorate"
	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/engine"
)

type decorateFlags struct {
	cursor int
	stats  bool
}

func newDecorateCommand() *cobra.Command {
	flags := &decorateFlags{}

	cmd := &cobra.Command{
		Use:   "decorate <file>",
		Short: "Run the render pipeline over a file and print the instructions",
		Long:  decorateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecorate(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.cursor, "cursor", -1,
		"byte offset of the cursor; the construct under it is revealed as raw syntax")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print line cache statistics after the run")

	return cmd
}

const decorateLongDescription = `Run the full livemark pipeline over a file and print the resulting
render instructions: line attributes, span replacements, span marks,
and widget anchors, in the order a render host would apply them.

Examples:
  livemark decorate README.md              # Decorate with nothing revealed
  livemark decorate README.md --cursor 42  # Reveal the construct at offset 42
  livemark decorate README.md --stats      # Include cache statistics`

func runDecorate(cmd *cobra.Command, args []string, flags *decorateFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	eng := engine.New(engineOptions(cfg, logger))
	doc := document.NewSnapshot(string(data))

	oracle := decorate.NoReveal
	if flags.cursor >= 0 {
		oracle = decorate.CursorOracle(flags.cursor)
	}

	instrs := eng.Update(doc, oracle)

	styles := stylesFor(cmd)
	pretty.RenderInstructions(cmd.OutOrStdout(), styles, instrs)

	if flags.stats {
		stats := eng.CacheStats()
		logger.Info("line cache",
			logging.FieldCacheSize, stats.Size,
			logging.FieldCacheHits, stats.Hits,
			logging.FieldCacheMisses, stats.Misses,
		)
	}

	return nil
}

// loadConfig resolves the --config flag: an explicit path must exist, no
// flag means built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}
	return cfg, nil
}

// engineOptions maps the file config onto engine options.
func engineOptions(cfg *config.Config, logger *log.Logger) engine.Options {
	opts := engine.Options{
		LineCacheCapacity: cfg.Cache.Capacity,
		DetectLanguages:   cfg.DetectLanguages,
		Logger:            logger,
	}
	if cfg.Viewport.Enabled {
		opts.ViewportLines = cfg.Viewport.BufferLines
	}
	return opts
}

// stylesFor builds output styles honoring the --color persistent flag.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))
}
