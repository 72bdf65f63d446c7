// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source discovers committee roster XML files and decodes them into
// types.Document values. Every caller re-lists and re-parses the files; no
// parsed document outlives the call that read it.
package source

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/pdiddy/senate-rosters/pkg/types"
)

const (
	// FilePrefix and FileSuffix bracket the committee abbreviation in a
	// roster file name.
	FilePrefix = "committee_memberships_"
	FileSuffix = ".xml"

	// Pattern is the glob matched against the input directory.
	Pattern = FilePrefix + "*" + FileSuffix
)

// Options selects where roster files are read from and where diagnostics go.
// The zero value reads the working directory of the OS filesystem and
// discards diagnostics.
type Options struct {
	Fs     afero.Fs
	Dir    string
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Log returns the configured logger, or a no-op logger when none is set.
func (o Options) Log() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ScanSummary holds the outcome of one pass over the input directory.
type ScanSummary struct {
	Parsed  int
	Skipped int
}

// Total returns the number of files considered.
func (s ScanSummary) Total() int {
	return s.Parsed + s.Skipped
}

// Discover returns the roster files in dir, sorted by name. A directory with
// no matching files (or no directory at all) yields an empty list.
func Discover(fs afero.Fs, dir string) ([]string, error) {
	matches, err := afero.Glob(fs, filepath.Join(dir, Pattern))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	slices.Sort(matches)
	return matches, nil
}

// FileScopeID extracts the committee abbreviation from a roster file name
// (committee_memberships_SSBK.xml yields "SSBK"). It reports false when the
// base name lacks the expected prefix or suffix.
func FileScopeID(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasPrefix(base, FilePrefix) || !strings.HasSuffix(base, FileSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(base, FilePrefix), FileSuffix)
	return id, true
}

// Scan parses every roster file under opts.Dir and calls fn once per
// document, in file name order. Files that are not well-formed XML are
// logged and skipped; they contribute nothing. Errors reading a file are
// returned.
func Scan(ctx context.Context, opts Options, fn func(types.Document)) (ScanSummary, error) {
	opts = opts.withDefaults()

	paths, err := Discover(opts.Fs, opts.Dir)
	if err != nil {
		return ScanSummary{}, err
	}

	var summary ScanSummary
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		id, ok := FileScopeID(path)
		if !ok {
			opts.Logger.Warn("skipping file with unexpected name", zap.String("file", path))
			summary.Skipped++
			continue
		}

		data, err := afero.ReadFile(opts.Fs, path)
		if err != nil {
			return summary, fmt.Errorf("reading %s: %w", path, err)
		}

		committees, err := Parse(bytes.NewReader(data))
		if err != nil {
			opts.Logger.Warn("skipping invalid XML file", zap.String("file", path), zap.Error(err))
			summary.Skipped++
			continue
		}

		summary.Parsed++
		fn(types.Document{
			Path:        path,
			FileScopeID: id,
			Committees:  committees,
		})
	}

	opts.Logger.Debug("scanned roster files",
		zap.String("dir", opts.Dir),
		zap.Int("parsed", summary.Parsed),
		zap.Int("skipped", summary.Skipped))

	return summary, nil
}
