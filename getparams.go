package paramfetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/consensys/paramfetch/logger"
	"golang.org/x/sync/semaphore"
)

// defaultMaxConcurrent is the default bound on in-flight fetch-and-verify
// workers. Manifests can hold dozens of multi-gigabyte entries; fetching all
// of them at once mostly thrashes the link.
const defaultMaxConcurrent = 16

// GetParams ensures every parameter file selected from manifestJSON by opt
// exists under the cache directory for dataDir and matches its manifest
// digest. Missing or corrupt files are fetched from the gateway and verified
// again; files that already verify cause no network activity. Entries are
// processed concurrently and independently: a failing entry never aborts its
// siblings, and a non-nil result is an *AggregateError listing every entry
// that could not be materialized.
func GetParams(ctx context.Context, dataDir string, manifestJSON []byte, opt SectorSizeOpt, opts ...Option) error {
	cfg, err := NewConfig(dataDir, opts...)
	if err != nil {
		return err
	}
	return getParams(ctx, cfg, manifestJSON, opt)
}

// GetParamsDefault is GetParams using the bundled parameter manifest.
func GetParamsDefault(ctx context.Context, dataDir string, opt SectorSizeOpt, opts ...Option) error {
	return GetParams(ctx, dataDir, defaultManifest, opt, opts...)
}

// CheckParams verifies the selected parameter files without fetching
// anything: a missing file is reported as a failure instead of triggering a
// download. Like GetParams it returns nil or an *AggregateError.
func CheckParams(ctx context.Context, dataDir string, manifestJSON []byte, opt SectorSizeOpt, opts ...Option) error {
	cfg, err := NewConfig(dataDir, opts...)
	if err != nil {
		return err
	}
	params, err := parseManifest(manifestJSON)
	if err != nil {
		return err
	}
	dir := ParamDir(cfg.DataDir)
	return forEachEntry(ctx, cfg, dir, filterManifest(params, opt), func(ctx context.Context, path string, entry manifestEntry) error {
		return verifyFile(ctx, path, entry.info, cfg.TrustParams)
	})
}

func getParams(ctx context.Context, cfg Config, manifestJSON []byte, opt SectorSizeOpt) error {
	params, err := parseManifest(manifestJSON)
	if err != nil {
		return err
	}

	dir := ParamDir(cfg.DataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating parameter cache directory: %w", err)
	}

	return forEachEntry(ctx, cfg, dir, filterManifest(params, opt), func(ctx context.Context, path string, entry manifestEntry) error {
		return fetchVerifyParams(ctx, cfg, path, entry)
	})
}

// forEachEntry runs work once per entry, each on its own goroutine, gated by
// a weighted semaphore. It waits for every entry to finish (no short-circuit,
// no cross-entry cancellation) and reduces the failures, kept in selection
// order, into a single *AggregateError.
func forEachEntry(ctx context.Context, cfg Config, dir string, entries []manifestEntry, work func(context.Context, string, manifestEntry) error) error {
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(cfg.MaxConcurrent)
	errs := make([]error, len(entries))

	for i, entry := range entries {
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = fmt.Errorf("%s: %w", entry.name, err)
			continue
		}
		wg.Add(1)
		go func(i int, entry manifestEntry) {
			defer wg.Done()
			defer sem.Release(1)
			errs[i] = work(ctx, filepath.Join(dir, entry.name), entry)
		}(i, entry)
	}
	wg.Wait()

	var failures []error
	for _, err := range errs {
		if err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &AggregateError{errs: failures}
}

// fetchVerifyParams drives one entry through its check, fetch, re-check
// sequence.
func fetchVerifyParams(ctx context.Context, cfg Config, path string, entry manifestEntry) error {
	err := verifyFile(ctx, path, entry.info, cfg.TrustParams)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log := logger.Logger()
		log.Warn().Err(err).Str("file", path).Msg("parameter file check failed")
	}

	if err := fetchParams(ctx, cfg, path, entry.info); err != nil {
		return fmt.Errorf("%s: %w", entry.name, err)
	}

	// A file failing this re-check stays on disk; the next invocation
	// re-detects the mismatch and fetches it again.
	if err := verifyFile(ctx, path, entry.info, cfg.TrustParams); err != nil {
		return fmt.Errorf("%s: %w", entry.name, err)
	}
	return nil
}
