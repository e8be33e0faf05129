package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	man2html "github.com/alnah/go-man2html"
	"github.com/alnah/go-man2html/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file is not a man page (.1-.9, .man, .n, .l, optionally .gz)")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all man pages to convert. Output paths use ext.
func discoverFiles(inputPath, outputDir, ext string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateManPageExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", ext)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsManPage(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, ext)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// outputBase strips a .gz suffix and keeps the section: ls.1.gz -> ls.1.
func outputBase(inputPath string) string {
	return strings.TrimSuffix(filepath.Base(inputPath), ".gz")
}

// resolveOutputPath determines the output path for a man page.
// An outputDir ending in ext names the output file itself.
func resolveOutputPath(inputPath, outputDir, baseInputDir, ext string) string {
	name := outputBase(inputPath) + ext

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if baseInputDir == "" && strings.HasSuffix(outputDir, ext) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, name)
		}
	}

	return filepath.Join(outputDir, name)
}

// validateManPageExtension checks that the file looks like a man page.
func validateManPageExtension(path string) error {
	if !fileutil.IsManPage(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Base(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > man2html.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, man2html.MaxPoolSize)
	}
	return nil
}
