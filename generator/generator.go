package generator

// Generator Package Structure:
//
//   - generator.go  - Generator and the Create flow
//   - types.go      - Request/Result types and the run summary
//   - errors.go     - error taxonomy
//   - fs.go         - file-system capability
//   - utils.go      - cn helper module and import path resolution
//   - selection.go  - reading a line range out of a document
//   - org.go        - component blocks embedded in org-mode files
//   - workspace.go  - workspace root discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"carve/config"
	"carve/rewriter"
)

type Options struct {
	// Root is the workspace root that ComponentsDir and UtilPath are
	// relative to.
	Root   string
	Config *config.Config
	FS     FS
	// DryRun renders to Out instead of touching the file system.
	DryRun bool
	Out    io.Writer
}

type Generator struct {
	opts Options
}

func New(opts Options) *Generator {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.FS == nil {
		opts.FS = OSFS{}
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Generator{opts: opts}
}

// ResolveName trims, optionally normalizes, and validates a component name.
func (g *Generator) ResolveName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameMissing
	}
	if g.opts.Config.NormalizeName {
		name = rewriter.NormalizeName(name)
	}
	if !rewriter.ValidateName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, raw)
	}
	return name, nil
}

// TargetPath returns where the component called name would be written.
func (g *Generator) TargetPath(name string) string {
	return filepath.Join(g.opts.Root, g.opts.Config.ComponentsDir, name+g.opts.Config.Extension)
}

// Create rewrites req.Selection into a component file. Inputs are validated
// before anything is written. An existing target yields *FileExistsError and
// leaves the file system untouched apart from the components directory and
// helper module.
func (g *Generator) Create(ctx context.Context, req Request) (*Result, error) {
	name, err := g.ResolveName(req.Name)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Selection) == "" {
		return nil, ErrSelectionMissing
	}
	if g.opts.Root == "" {
		return nil, ErrNoWorkspace
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := g.opts.Config
	componentsDir := filepath.Join(g.opts.Root, cfg.ComponentsDir)
	target := g.TargetPath(name)
	result := &Result{Name: name, Path: target, DryRun: g.opts.DryRun}

	if !g.opts.DryRun {
		if err := g.opts.FS.MkdirAll(componentsDir); err != nil {
			return nil, &WriteError{Path: componentsDir, Err: err}
		}
		created, err := EnsureUtil(g.opts.FS, g.opts.Root, cfg)
		if err != nil {
			return nil, err
		}
		result.UtilCreated = created
	}

	exists, err := g.opts.FS.Exists(target)
	if err != nil {
		return nil, &WriteError{Path: target, Err: err}
	}
	if exists {
		slog.Debug("Component target exists, skipping", "path", target)
		return nil, &FileExistsError{Path: target}
	}

	result.Source = g.Render(name, req.Selection)
	slog.Debug("Rendered component", "name", name, "origin", req.Origin, "bytes", len(result.Source))

	if g.opts.DryRun {
		fmt.Fprintf(g.opts.Out, "// %s\n%s", target, result.Source)
		return result, nil
	}

	if err := g.opts.FS.WriteFile(target, []byte(result.Source)); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &FileExistsError{Path: target}
		}
		return nil, &WriteError{Path: target, Err: err}
	}

	slog.Debug("Created component", "path", target)
	return result, nil
}

// Render runs the rewrite passes over selection and wraps the result as the
// component called name. It performs no I/O.
func (g *Generator) Render(name, selection string) string {
	cfg := g.opts.Config
	body := rewriter.Rewrite(selection, rewriter.Options{
		Strip:      cfg.StripAttributes,
		Disallowed: cfg.DisallowedAttributes,
		DataPrefix: cfg.DataPrefix,
	})
	componentsDir := filepath.Join(g.opts.Root, cfg.ComponentsDir)
	return rewriter.Wrap(name, body, helperImport(componentsDir, filepath.Join(g.opts.Root, cfg.UtilPath)))
}

// CreateAll runs Create for every request and tallies the outcomes. It stops
// early only when ctx is done.
func (g *Generator) CreateAll(ctx context.Context, reqs []Request) GenerationResult {
	var total GenerationResult
	for _, req := range reqs {
		if ctx.Err() != nil {
			break
		}
		res, err := g.Create(ctx, req)
		total.Record(res, err)
		switch {
		case err == nil:
			slog.Debug("Component created", "name", res.Name, "path", res.Path)
		case errors.Is(err, ErrFileExists):
			slog.Warn("Component skipped", "name", req.Name, "error", err)
		default:
			slog.Error("Component failed", "name", req.Name, "origin", req.Origin, "error", err)
		}
	}
	return total
}
