package items

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// walkMaxWorkers is the default concurrency for fastwalk.
const walkMaxWorkers = 4

// Walk defaults.
const (
	DefaultMaxDepth   = 4
	DefaultMaxResults = 5000
)

// errWalkMaxResults stops the walk once the result cap is reached. It is
// filtered from the returned error.
var errWalkMaxResults = errors.New("max results reached")

// errWalkCanceled signals context cancellation inside the walk callback and
// is converted back into ctx.Err().
var errWalkCanceled = errors.New("walk canceled")

// skipDirs lists directory base names the walker never descends into.
var skipDirs = map[string]struct{}{
	".git":         {},
	".cache":       {},
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
	"build":        {},
	"dist":         {},
}

// WalkOptions bounds a directory walk. Zero values select the defaults.
type WalkOptions struct {
	MaxDepth   int
	MaxResults int
	// Dirs includes directories, with a trailing slash, alongside files.
	Dirs bool
}

// Walk lists paths under root, relative to root and sorted. Directories named
// in skipDirs are pruned, permission errors are ignored, and the walk stops
// early at MaxResults or when ctx is done.
func Walk(ctx context.Context, root string, opts WalkOptions) ([]string, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	rootClean := filepath.Clean(root)

	var (
		mu      sync.Mutex
		results = make([]string, 0, 256)
		stopped bool
	)

	conf := &fastwalk.Config{
		NumWorkers: walkMaxWorkers,
		Follow:     false,
		Sort:       fastwalk.SortNone,
		MaxDepth:   opts.MaxDepth,
	}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return errWalkCanceled
		default:
		}

		if path == rootClean {
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip {
				return fs.SkipDir
			}
			if !opts.Dirs {
				return nil
			}
		}

		rel, relErr := filepath.Rel(rootClean, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}

		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return errWalkMaxResults
		}
		results = append(results, rel)
		if len(results) >= opts.MaxResults {
			stopped = true
			return errWalkMaxResults
		}
		return nil
	}

	err := fastwalk.Walk(conf, rootClean, fastwalk.IgnorePermissionErrors(walkFn))
	sort.Strings(results)
	switch {
	case err == nil, errors.Is(err, errWalkMaxResults):
		return results, nil
	case errors.Is(err, errWalkCanceled):
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		return results, context.Canceled
	default:
		return results, err
	}
}
