package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	man2html "github.com/alnah/go-man2html"
	"github.com/alnah/go-man2html/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
// Results keep the order of files.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := pool.Acquire()
			if conv == nil {
				// Converter creation failed, mark remaining jobs as failed
				initErr := converterInitError(pool)
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       initErr,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertSource reads a man page (gzip-aware) and converts it.
func convertSource(ctx context.Context, conv CLIConverter, path string, params *conversionParams) (*man2html.ConvertResult, error) {
	content, err := fileutil.ReadManPage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadManPage, err)
	}
	return conv.Convert(ctx, params.input(content))
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	convResult, err := convertSource(ctx, conv, f.InputPath, params)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
		result.Duration = time.Since(start)
		return result
	}

	data := convResult.HTML
	if params.pdf {
		data = convResult.PDF
	}

	// #nosec G306 -- HTML and PDF files are meant to be readable
	if err := os.WriteFile(f.OutputPath, data, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	params.logger.Debug("converted",
		zap.String("input", f.InputPath),
		zap.String("page", fileutil.ManPageName(f.InputPath)),
		zap.String("section", convResult.Section),
		zap.Int("headings", convResult.Headings),
		zap.Duration("duration", result.Duration))
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// combineErrors aggregates the errors of failed conversions.
func combineErrors(results []ConversionResult) error {
	var errs error
	for _, r := range results {
		if r.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.InputPath, r.Err))
		}
	}
	return errs
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
