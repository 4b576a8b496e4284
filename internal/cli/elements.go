package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/livemark/internal/logging"
	"github.com/yaklabco/livemark/internal/ui/pretty"
	"github.com/yaklabco/livemark/pkg/decorate"
	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/engine"
)

type elementsFlags struct {
	offset int
}

func newElementsCommand() *cobra.Command {
	flags := &elementsFlags{}

	cmd := &cobra.Command{
		Use:   "elements <file>",
		Short: "Print the resolved elements recognized in a file",
		Long:  elementsLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElements(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.offset, "offset", -1,
		"only print elements whose span contains this byte offset")

	return cmd
}

const elementsLongDescription = `Parse a file and print the conflict-resolved element list: every
construct the scanners recognized, after overlaps have been dropped
by precedence. This is the element set decoration is built from.

Examples:
  livemark elements README.md             # All resolved elements
  livemark elements README.md --offset 42 # Elements containing offset 42`

func runElements(cmd *cobra.Command, args []string, flags *elementsFlags) error {
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

	// Run a full update to populate the resolved element list.
	eng.Update(doc, decorate.NoReveal)

	elems := eng.Elements()
	if flags.offset >= 0 {
		elems = eng.ElementsAt(flags.offset)
	}

	styles := stylesFor(cmd)
	pretty.RenderElements(cmd.OutOrStdout(), styles, elems)

	return nil
}
