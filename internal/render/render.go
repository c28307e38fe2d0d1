package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/lookgraph/internal/dag"
)

// DefaultEngine is the Graphviz layout program.
const DefaultEngine = "dot"

// Renderer writes DOT source and runs the Graphviz engine over it.
type Renderer struct {
	Format string // output format such as pdf, svg or png; gv and dot skip the engine
	Engine string // DefaultEngine when empty
	Style  Style
	Logger *slog.Logger
}

// SourceOnly reports whether format needs no engine run.
func SourceOnly(format string) bool {
	switch strings.ToLower(format) {
	case "", "gv", "dot":
		return true
	}
	return false
}

// Render writes the DOT source for edges to path and, unless the format is
// DOT itself, renders it to path.<format>. It returns the artifact path.
func (r *Renderer) Render(ctx context.Context, edges []dag.Edge, path string) (string, error) {
	log := r.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if err := r.writeSource(edges, path); err != nil {
		return "", &RenderError{Path: path, Err: err}
	}
	log.Debug("wrote graph source", "path", path, "edges", len(edges))

	if SourceOnly(r.Format) {
		return path, nil
	}

	engine := r.Engine
	if engine == "" {
		engine = DefaultEngine
	}
	bin, err := exec.LookPath(engine)
	if err != nil {
		return "", &RenderError{Path: path, Err: fmt.Errorf("%w: %s", ErrEngineNotFound, engine)}
	}

	artifact := path + "." + r.Format
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-T"+r.Format, "-o", artifact, path)
	cmd.Stderr = &stderr

	log.Debug("running graphviz", "engine", bin, "format", r.Format, "output", artifact)
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", &RenderError{Path: artifact, Err: err}
	}

	return artifact, nil
}

func (r *Renderer) writeSource(edges []dag.Edge, path string) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := WriteDOT(f, edges, r.Style); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}

// IsEngineNotFound reports whether err is a missing engine binary.
func IsEngineNotFound(err error) bool {
	return errors.Is(err, ErrEngineNotFound)
}
