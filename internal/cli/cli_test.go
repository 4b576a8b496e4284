package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/livemark/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "livemark" {
		t.Errorf("expected Use to be 'livemark', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{"decorate", "elements", "preview", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestDecorateCommandFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	decorateCmd, _, err := cmd.Find([]string{"decorate"})
	if err != nil {
		t.Fatalf("decorate command not found: %v", err)
	}

	expectedFlags := []string{"cursor", "stats"}

	for _, flagName := range expectedFlags {
		flag := decorateCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on decorate command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{"debug", "config", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	// Version command uses charmbracelet/log which writes to stdout directly,
	// so we just verify it doesn't error.
}

func TestDecorateCommand_File(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, "# Title\n\nSome **bold** text.\n")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetArgs([]string{"decorate", path, "--color", "never"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("decorate command failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "line-attribute") {
		t.Errorf("expected a line attribute for the heading, got:\n%s", output)
	}
	if !strings.Contains(output, "lm-bold") {
		t.Errorf("expected a bold replacement, got:\n%s", output)
	}
}

func TestDecorateCommand_CursorReveals(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, "**bold**\n")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	// Cursor inside the bold span keeps the raw markers visible.
	cmd.SetArgs([]string{"decorate", path, "--cursor", "4", "--color", "never"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("decorate command failed: %v", err)
	}

	if strings.Contains(out.String(), "lm-bold") {
		t.Errorf("expected no bold replacement with cursor inside span, got:\n%s", out.String())
	}
}

func TestDecorateCommand_MissingFile(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetArgs([]string{"decorate", filepath.Join(t.TempDir(), "absent.md")})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestElementsCommand_File(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, "# Title\n\n`code` and [link](https://example.com)\n")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetArgs([]string{"elements", path, "--color", "never"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("elements command failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{"heading", "inline-code", "link"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected element kind %q in output:\n%s", want, output)
		}
	}
}

func TestElementsCommand_Offset(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, "plain then **bold** here\n")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetArgs([]string{"elements", path, "--offset", "0", "--color", "never"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("elements command failed: %v", err)
	}

	if !strings.Contains(out.String(), "no elements") {
		t.Errorf("expected no elements at offset 0, got:\n%s", out.String())
	}
}

func TestPreviewCommand_WritesHTML(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, "# Title\n\nSome **bold** text.\n")
	outPath := filepath.Join(t.TempDir(), "out.html")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetArgs([]string{"preview", path, "-o", outPath})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("preview command failed: %v", err)
	}

	html, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}

	if !strings.Contains(string(html), "<h1") {
		t.Errorf("expected h1 in rendered HTML, got:\n%s", html)
	}
	if !strings.Contains(string(html), "<strong>bold</strong>") {
		t.Errorf("expected strong in rendered HTML, got:\n%s", html)
	}
}

func writeMarkdown(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
