package theme

import (
	"context"
	"path/filepath"
	"regexp"
	"time"

	domain "github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/render"
	"github.com/xala-technologies/xala-cli/pkg/diff"
	xerrors "github.com/xala-technologies/xala-cli/pkg/errors"
)

var generatedLine = regexp.MustCompile(`Generated: (\S+)`)

// Drift describes one artefact whose content on disk differs from what
// Generate would write.
type Drift struct {
	Format  render.Format
	Path    string
	Missing bool
	Added   int
	Removed int
	Diff    string
}

// Check renders the requested formats in memory and compares them with the
// files in outDir. Only drifted files are returned and nothing is written.
// The Generated: timestamp of an existing file is reused so it never counts
// as a change.
func (g *Generator) Check(ctx context.Context, cfg domain.Config, outDir string, formats ...render.Format) ([]Drift, error) {
	if len(formats) == 0 {
		formats = render.Formats()
	}
	if err := domain.Validate(cfg); err != nil {
		return nil, err
	}

	name := cfg.Normalize().Name
	var drifts []Drift
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(outDir, format.Filename(name))
		exists, err := g.fs.Exists(path)
		if err != nil {
			return nil, xerrors.NewIOError("stat", path, err)
		}

		var current []byte
		stamp := g.now()
		if exists {
			if current, err = g.fs.ReadFile(path); err != nil {
				return nil, xerrors.NewIOError("read", path, err)
			}
			if ts, ok := generatedAt(current); ok {
				stamp = ts
			}
		}

		content, err := render.Render(format, render.NewDocument(cfg, stamp))
		if err != nil {
			return nil, err
		}

		before := path
		if !exists {
			before = "/dev/null"
		}
		patch := diff.Unified(current, []byte(content), before, path)
		if patch == "" {
			continue
		}
		added, removed := diff.Changed(current, []byte(content))
		drifts = append(drifts, Drift{
			Format:  format,
			Path:    path,
			Missing: !exists,
			Added:   added,
			Removed: removed,
			Diff:    patch,
		})
	}

	g.logger.Info(ctx, "theme checked", "theme", name, "out_dir", outDir, "drifted", len(drifts))
	return drifts, nil
}

func generatedAt(content []byte) (time.Time, bool) {
	m := generatedLine.FindSubmatch(content)
	if m == nil {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, string(m[1]))
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
