package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	man2html "github.com/alnah/go-man2html"
	"github.com/alnah/go-man2html/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadManPage     = errors.New("failed to read man page")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrConverterInit   = errors.New("failed to initialize converter")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	highlight *man2html.Highlight
	page      *man2html.PageSettings
	pdf       bool
	recordAll bool
	logger    *zap.Logger
}

// input builds the library input for one page.
func (p *conversionParams) input(source string) man2html.Input {
	return man2html.Input{
		Source:    source,
		Highlight: p.highlight,
		Page:      p.page,
		PDF:       p.pdf,
		RecordAll: p.recordAll,
	}
}

// outputExt returns the output file extension.
func (p *conversionParams) outputExt() string {
	if p.pdf {
		return ".pdf"
	}
	return ".html"
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, flags *cliFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg, cfg)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(flags.input, args, cfg)
	if err != nil {
		return err
	}

	page, err := buildPageSettings(cfg)
	if err != nil {
		return err
	}

	params := &conversionParams{
		highlight: buildHighlight(cfg),
		page:      page,
		pdf:       cfg.PDF.Enabled,
		recordAll: cfg.Conversion.RecordAll,
		logger:    env.Logger,
	}
	opts := buildOptions(cfg, timeout)

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadManPage, err)
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	// A single page without a destination goes to stdout.
	if !info.IsDir() && outputDir == "" {
		if err := validateManPageExtension(inputPath); err != nil {
			return err
		}
		return convertToStdout(ctx, inputPath, opts, params, env)
	}

	files, err := discoverFiles(inputPath, outputDir, params.outputExt())
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no man pages found in %s", ErrNoInput, inputPath)
	}

	size := man2html.ResolvePoolSize(cfg.Conversion.Workers)
	if size > len(files) {
		size = len(files)
	}
	env.Logger.Debug("starting conversion",
		zap.String("input", inputPath),
		zap.Int("files", len(files)),
		zap.Int("workers", size),
		zap.Bool("pdf", params.pdf))

	pool := env.NewPool(size, opts...)
	defer closePool(pool, env.Logger)

	results := convertBatch(ctx, pool, files, params)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed: %w", failed, combineErrors(results))
	}

	return nil
}

// convertToStdout converts one page and writes the document to env.Stdout.
func convertToStdout(ctx context.Context, path string, opts []man2html.Option, params *conversionParams, env *Environment) error {
	pool := env.NewPool(1, opts...)
	defer closePool(pool, env.Logger)

	conv := pool.Acquire()
	if conv == nil {
		return converterInitError(pool)
	}
	defer pool.Release(conv)

	start := time.Now()
	result, err := convertSource(ctx, conv, path, params)
	if err != nil {
		return err
	}

	data := result.HTML
	if params.pdf {
		data = result.PDF
	}
	if _, err := env.Stdout.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	env.Logger.Debug("converted",
		zap.String("input", path),
		zap.String("page", result.Name),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// closePool releases browser resources, logging any failure.
func closePool(pool Pool, logger *zap.Logger) {
	if err := pool.Close(); err != nil {
		logger.Debug("closing converter pool", zap.Error(err))
	}
}

// converterInitError reports why the pool could not provide a converter.
func converterInitError(pool Pool) error {
	if err := pool.InitError(); err != nil {
		return fmt.Errorf("%w: %w", ErrConverterInit, err)
	}
	return ErrConverterInit
}

// loadConfig loads the config named by the flag or MAN2HTML_CONFIG.
// Without either, defaults are returned.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.CSS.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}

	// Page flags
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	// Highlight flags
	if flags.highlight.language != "" {
		cfg.Highlight.Language = flags.highlight.language
		cfg.Highlight.Enabled = true
	}
	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
	}

	if flags.pdf {
		cfg.PDF.Enabled = true
	}
	if flags.workers > 0 {
		cfg.Conversion.Workers = flags.workers
	}
	if flags.recordAll {
		cfg.Conversion.RecordAll = true
	}
}

// resolveTimeout determines the PDF timeout.
// Priority: flag > MAN2HTML_TIMEOUT > config. Zero means the library default.
func resolveTimeout(flagValue string, env *envConfig, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}

	if env.Timeout > 0 {
		return env.Timeout, nil
	}

	return cfg.Conversion.TimeoutDuration()
}

// resolveInputPath determines the input path from -i, args, or config.
func resolveInputPath(flagInput string, args []string, cfg *config.Config) (string, error) {
	if flagInput != "" {
		return flagInput, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output destination from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// buildPageSettings creates man2html.PageSettings from config.
// Returns nil when nothing is set, letting the library apply defaults.
func buildPageSettings(cfg *config.Config) (*man2html.PageSettings, error) {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil, nil
	}

	ps := &man2html.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// buildHighlight creates man2html.Highlight from config, nil when disabled.
func buildHighlight(cfg *config.Config) *man2html.Highlight {
	if !cfg.Highlight.Enabled {
		return nil
	}
	return &man2html.Highlight{
		Language: cfg.Highlight.Language,
		Style:    cfg.Highlight.Style,
	}
}

// buildOptions derives converter options from config.
func buildOptions(cfg *config.Config, timeout time.Duration) []man2html.Option {
	var opts []man2html.Option
	if cfg.CSS.Style != "" {
		opts = append(opts, man2html.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, man2html.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Highlight.Style != "" {
		opts = append(opts, man2html.WithHighlightStyle(cfg.Highlight.Style))
	}
	if timeout > 0 {
		opts = append(opts, man2html.WithTimeout(timeout))
	}
	return opts
}
