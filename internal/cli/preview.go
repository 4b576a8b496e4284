package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yaklabco/livemark/internal/logging"
)

type previewFlags struct {
	output string
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a file to HTML for a static preview",
		Long:  previewLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to file instead of stdout")

	return cmd
}

const previewLongDescription = `Render a Markdown file to HTML. This is the read-only counterpart to
the live pipeline: a plain GFM render with no reveal logic, useful for
sanity-checking how a document looks outside the editor.

Examples:
  livemark preview README.md               # HTML on stdout
  livemark preview README.md -o index.html # HTML to a file`

func runPreview(cmd *cobra.Command, args []string, flags *previewFlags) error {
	logger := logging.Default()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := md.Convert(data, &buf); err != nil {
		return fmt.Errorf("render %s: %w", args[0], err)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", flags.output, err)
		}
		logger.Info("preview written", logging.FieldPath, flags.output, "bytes", buf.Len())
		return nil
	}

	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}
