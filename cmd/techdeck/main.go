// Package main provides the CLI entry point for techdeck.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vansh-app/techdeck/pkg/techdeck"
	"github.com/vansh-app/techdeck/pkg/techdeck/inspect"
	"github.com/vansh-app/techdeck/pkg/techdeck/preview"
	"github.com/vansh-app/techdeck/pkg/techdeck/watch"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	rootDir    string
	outDir     string
	imageDir   string
	outFile    string
	verbose    bool

	watchMode bool

	jsonOut  bool
	pretty   bool
	xlsxPath string

	previewDir   string
	previewWidth int

	logger *zap.Logger
	cfg    techdeck.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "techdeck",
		Short: "Build the Vansh technical learnings deck",
		Long: `techdeck writes a nine-slide widescreen PowerPoint deck summarizing the
Vansh app debugging journey. Screenshots found in the images directory are
embedded; missing ones are drawn as labeled placeholders.

Run without arguments to build docs/ppt/Vansh-Tech-Learnings.pptx.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
		RunE:              runBuild,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: ./"+techdeck.DefaultConfigFile+" if present)")
	pf.StringVar(&rootDir, "root", "", "Directory relative paths resolve against (default: .)")
	pf.StringVar(&outDir, "out-dir", "", "Output directory (default: "+techdeck.DefaultOutDir+")")
	pf.StringVar(&imageDir, "image-dir", "", "Screenshot directory (default: <out-dir>/images)")
	pf.StringVar(&outFile, "out", "", "Deck file name (default: "+techdeck.DefaultOutFile+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr (default: warnings only)")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the deck (default command)",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	buildCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Rebuild whenever a screenshot changes")

	inspectCmd := &cobra.Command{
		Use:   "inspect [deck.pptx]",
		Short: "Summarize the slides and shapes of a written deck",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the summary as JSON")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	inspectCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the summary to an xlsx workbook")

	previewCmd := &cobra.Command{
		Use:   "preview [deck.pptx]",
		Short: "Render every slide of a written deck to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&previewDir, "dir", "", "Output directory for slide images (default: <out-dir>/preview)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "Image width in pixels")

	rootCmd.AddCommand(buildCmd, inspectCmd, previewCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	// Progress stays quiet unless --verbose; stdout carries only the result lines.
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())), level)
	logger = zap.New(core, zap.AddCaller())

	var err error
	cfg, err = techdeck.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logger != nil {
		_ = logger.Sync()
	}
}

// options merges flag overrides into the loaded config.
func options() techdeck.Options {
	c := cfg
	if rootDir != "" {
		c.Root = rootDir
	}
	if outDir != "" {
		c.OutDir = outDir
	}
	if imageDir != "" {
		c.ImageDir = imageDir
	}
	if outFile != "" {
		c.OutFile = outFile
	}
	opts := c.Options()
	opts.Logger = logger
	return opts
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts := options()

	build := func() error {
		res, err := techdeck.Build(opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\n", res.OutputPath)
		return nil
	}

	if err := build(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	if !watchMode {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(opts.ImagesDir(), cfg.Watch.Debounce, build, logger)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.ImagesDir(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Watching: %s\n", w.Dir())
	return w.Run(ctx)
}

func runInspect(cmd *cobra.Command, args []string) error {
	deckPath := deckArg(args)

	if _, err := os.Stat(deckPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", deckPath)
	}

	summary, err := inspect.Inspect(deckPath)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	if xlsxPath != "" {
		if err := inspect.WriteXLSX(summary, xlsxPath); err != nil {
			return fmt.Errorf("failed to write xlsx: %w", err)
		}
		logger.Info("Wrote inspection workbook", zap.String("path", xlsxPath))
	}

	if jsonOut {
		data, err := toJSON(summary, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderSummary(summary))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	deckPath := deckArg(args)

	if _, err := os.Stat(deckPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", deckPath)
	}

	dir := previewDir
	if dir == "" {
		dir = filepath.Join(options().OutputDir(), "preview")
	}
	width := previewWidth
	if width <= 0 {
		width = cfg.Preview.Width
	}

	paths, err := preview.Render(deckPath, dir, width, logger)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\n", p)
	}
	return nil
}

// deckArg returns the deck path argument or the configured output path.
func deckArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return options().OutputPath()
}
