package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/lookgraph/internal/loader"
	"golang.org/x/sync/errgroup"
)

// DefaultPattern matches LookML model files.
const DefaultPattern = "*.model.lkml"

// LoadFunc reads a model file into a generic tree.
type LoadFunc func(path string) (map[string]any, error)

// Builder discovers model files under Root and folds them into a Manifest.
// The zero value of every field except Root has a usable default.
type Builder struct {
	Root       string
	Patterns   []string   // base-name globs, DefaultPattern when empty
	NameSource NameSource // NameFromFile when empty
	Workers    int        // files parsed concurrently, 1 when < 1
	Logger     *slog.Logger
	Load       LoadFunc // loader.Load when nil
}

func (b *Builder) patterns() []string {
	if len(b.Patterns) == 0 {
		return []string{DefaultPattern}
	}
	return b.Patterns
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}

func (b *Builder) load() LoadFunc {
	if b.Load == nil {
		return loader.Load
	}
	return b.Load
}

// Discover returns every file under Root whose base name matches one of the
// patterns, sorted by path. A missing Root yields no files.
func (b *Builder) Discover(ctx context.Context) ([]string, error) {
	patterns := b.patterns()
	for _, p := range patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}

	if _, err := os.Stat(b.Root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(b.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, p := range patterns {
			if ok, _ := filepath.Match(p, d.Name()); ok {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", b.Root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Build discovers, parses and extracts every model file, then folds the
// results in discovery order. ErrNoInputFound is returned before any file is
// parsed when discovery finds nothing. The first failing file aborts the
// build with a *FileError.
func (b *Builder) Build(ctx context.Context) (*Manifest, error) {
	log := b.logger()

	files, err := b.Discover(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files matching %s under %s",
			ErrNoInputFound, strings.Join(b.patterns(), ", "), b.Root)
	}
	log.Debug("discovered model files", "count", len(files), "root", b.Root)

	extracted, err := b.extractAll(ctx, files)
	if err != nil {
		return nil, err
	}

	m := New()
	for i, nodes := range extracted {
		before := len(m.Overwritten)
		m = m.Fold(nodes)
		for _, id := range m.Overwritten[before:] {
			log.Warn("node overwritten by later file", "id", string(id), "path", files[i])
		}
	}

	log.Debug("built manifest", "nodes", m.Nodes.Len(), "edges", m.ChildMap.EdgeCount())
	return m, nil
}

// extractAll returns one NodeMap per file, indexed like files. With more than
// one worker files are processed concurrently. The first failure cancels
// files not yet started; the error reported is that of the lowest-indexed
// file that actually failed, never the resulting cancellation.
func (b *Builder) extractAll(ctx context.Context, files []string) ([]*NodeMap, error) {
	results := make([]*NodeMap, len(files))

	if b.Workers <= 1 {
		for i, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			nodes, err := b.extractFile(path)
			if err != nil {
				return nil, err
			}
			results[i] = nodes
		}
		return results, nil
	}

	errs := make([]error, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return err
			}
			nodes, err := b.extractFile(path)
			if err != nil {
				errs[i] = err
				return err
			}
			results[i] = nodes
			return nil
		})
	}
	waitErr := g.Wait()

	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return nil, err
		}
	}
	if waitErr != nil {
		return nil, waitErr
	}
	return results, nil
}

func (b *Builder) extractFile(path string) (*NodeMap, error) {
	b.logger().Debug("parsing model file", "path", path)

	tree, err := b.load()(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	name, err := modelNameFor(path, tree, b.NameSource)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	nodes, err := Extract(tree, name)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return nodes, nil
}
