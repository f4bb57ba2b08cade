// Package theme orchestrates theme generation: it builds the token set once,
// renders each requested format and writes the results through the
// filesystem port.
package theme

import (
	"context"
	"path/filepath"
	"time"

	domain "github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/infrastructure/logging"
	"github.com/xala-technologies/xala-cli/internal/ports"
	"github.com/xala-technologies/xala-cli/internal/render"
	xerrors "github.com/xala-technologies/xala-cli/pkg/errors"
)

// Generator writes theme artefacts.
type Generator struct {
	fs     ports.FileSystem
	logger ports.Logger
	now    func() time.Time
}

// Option customises a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for Generated: header lines.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator constructs a Generator. A nil logger discards output.
func NewGenerator(fs ports.FileSystem, logger ports.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	g := &Generator{
		fs:     fs,
		logger: logger.With("component", "generator"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// File is one written artefact.
type File struct {
	Format render.Format
	Path   string
	Bytes  int
}

// Result summarises a generation run.
type Result struct {
	Theme string
	Files []File
}

// Paths lists the written file paths in generation order.
func (r Result) Paths() []string {
	out := make([]string, len(r.Files))
	for i, f := range r.Files {
		out[i] = f.Path
	}
	return out
}

// Generate validates cfg and writes the requested formats (all of them when
// none are given) into outDir. Files are written one after another and the
// first failure is returned; earlier files are left in place.
func (g *Generator) Generate(ctx context.Context, cfg domain.Config, outDir string, formats ...render.Format) (Result, error) {
	if len(formats) == 0 {
		formats = render.Formats()
	}
	if err := domain.Validate(cfg); err != nil {
		g.logger.Error(ctx, "theme config rejected", "theme", cfg.Name, "error", err)
		return Result{}, err
	}

	doc := render.NewDocument(cfg, g.now())
	result := Result{Theme: doc.Config.Name}
	g.logger.Info(ctx, "generating theme", "theme", doc.Config.Name, "out_dir", outDir, "formats", len(formats))

	for _, format := range formats {
		file, err := g.write(ctx, doc, outDir, format)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, file)
	}

	g.logger.Success(ctx, "theme generated", "theme", doc.Config.Name, "files", len(result.Files))
	return result, nil
}

// GenerateFormat writes a single format and returns its path.
func (g *Generator) GenerateFormat(ctx context.Context, cfg domain.Config, outDir string, format render.Format) (string, error) {
	if err := domain.Validate(cfg); err != nil {
		return "", err
	}
	file, err := g.write(ctx, render.NewDocument(cfg, g.now()), outDir, format)
	if err != nil {
		return "", err
	}
	return file.Path, nil
}

func (g *Generator) write(ctx context.Context, doc render.Document, outDir string, format render.Format) (File, error) {
	if err := ctx.Err(); err != nil {
		return File{}, err
	}

	content, err := render.Render(format, doc)
	if err != nil {
		return File{}, err
	}

	if err := g.fs.MkdirAll(outDir); err != nil {
		g.logger.Error(ctx, "create output directory failed", "path", outDir, "error", err)
		return File{}, xerrors.NewIOError("mkdir", outDir, err)
	}

	path := filepath.Join(outDir, format.Filename(doc.Config.Name))
	if err := g.fs.WriteFile(path, []byte(content)); err != nil {
		g.logger.Error(ctx, "write theme file failed", "path", path, "format", format, "error", err)
		return File{}, xerrors.NewIOError("write", path, err)
	}

	g.logger.Debug(ctx, "theme file written", "path", path, "format", format, "bytes", len(content))
	return File{Format: format, Path: path, Bytes: len(content)}, nil
}

// Discover returns the names of themes that already have a token file in dir.
func (g *Generator) Discover(dir string) ([]string, error) {
	suffix := render.FormatTokens.Suffix()
	matches, err := g.fs.Glob(filepath.Join(dir, "*"+suffix))
	if err != nil {
		return nil, xerrors.NewIOError("glob", dir, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		names = append(names, base[:len(base)-len(suffix)])
	}
	return names, nil
}
