package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aldehir/llm-analysis-index/internal/config"
	"github.com/aldehir/llm-analysis-index/internal/index"
	indexlog "github.com/aldehir/llm-analysis-index/internal/log"
)

var (
	configPath string
	parser     string
	verbose    bool
	noColor    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "llm-index <directory>",
	Short: "Build a landing page for multi-model analysis results",
	Long: `Scans a directory of per-model analysis folders and writes index.html
linking to each of them.

An analysis folder is any subdirectory containing index.html. Model metadata
is read from section09-provenance.html when present, and the first .md file in
the directory supplies the project title and description.

A directory named like a subcommand (list, help, completion) is taken as that
subcommand. Pass it with a path prefix instead, e.g. "llm-index ./list".`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

var listCmd = &cobra.Command{
	Use:   "list <directory>",
	Short: "List discovered analyses without writing index.html",
	Args:  cobra.ExactArgs(1),
	RunE:  listAnalyses,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&parser, "parser", "", "Provenance parser: pattern or dom (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(listCmd)
}

// newBuilder loads the config and wires a Builder that prints to stdout and
// logs warnings to stderr.
func newBuilder(cmd *cobra.Command) (*index.Builder, error) {
	if noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if parser != "" {
		cfg.Parser = parser
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --parser: %w", err)
		}
	}

	logger := indexlog.New(cmd.ErrOrStderr(), verbose)

	b, err := index.NewBuilder(index.BuilderConfig{
		Config: cfg,
		Logger: logger,
		Out:    cmd.OutOrStdout(),
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func targetDir(arg string) string {
	if abs, err := filepath.Abs(arg); err == nil {
		return abs
	}
	return arg
}

func runIndex(cmd *cobra.Command, args []string) error {
	// Past argument validation; errors from here on are not usage errors.
	cmd.SilenceUsage = true

	b, err := newBuilder(cmd)
	if err != nil {
		return err
	}

	root := targetDir(args[0])
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning directory: %s\n", root)

	path, _, err := b.Generate(root, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Successfully created: %s\n", color.GreenString("✓"), path)
	fmt.Fprintln(out, "\nOpen in browser:")
	fmt.Fprintf(out, "  file://%s\n", path)
	return nil
}

func listAnalyses(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	b, err := newBuilder(cmd)
	if err != nil {
		return err
	}

	rc, err := b.Build(targetDir(args[0]))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n", rc.Project.Title)
	for _, e := range rc.Entries {
		fmt.Fprintf(out, "  %-30s %-10s %-10s %s\n", e.DisplayName, e.Category.Label(), e.Duration, e.Folder)
	}
	return nil
}
