package theme

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xala-technologies/xala-cli/internal/infrastructure/fs"
	"github.com/xala-technologies/xala-cli/internal/render"
)

func TestCheckReportsMissingFiles(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(fs.NewMemory(), nil, WithClock(fixedNow))
	drifts, err := gen.Check(context.Background(), acme(), "out", render.FormatCSS, render.FormatTokens)
	require.NoError(t, err)
	require.Len(t, drifts, 2)

	for _, d := range drifts {
		assert.True(t, d.Missing)
		assert.Zero(t, d.Removed)
		assert.Positive(t, d.Added)
		assert.True(t, strings.HasPrefix(d.Diff, "--- /dev/null\n"))
	}
	assert.Equal(t, filepath.Join("out", "acme.css"), drifts[0].Path)
}

func TestCheckIgnoresTimestampOnlyDifferences(t *testing.T) {
	t.Parallel()

	mem := fs.NewMemory()
	_, err := NewGenerator(mem, nil, WithClock(fixedNow)).Generate(context.Background(), acme(), "out")
	require.NoError(t, err)

	later := func() time.Time { return fixedNow().Add(48 * time.Hour) }
	drifts, err := NewGenerator(mem, nil, WithClock(later)).Check(context.Background(), acme(), "out")
	require.NoError(t, err)
	assert.Empty(t, drifts)
}

func TestCheckReportsChangedColour(t *testing.T) {
	t.Parallel()

	mem := fs.NewMemory()
	gen := NewGenerator(mem, nil, WithClock(fixedNow))
	_, err := gen.Generate(context.Background(), acme(), "out", render.FormatCSS)
	require.NoError(t, err)

	changed := acme()
	changed.Colors = map[string]string{"primary": "#7c3aed"}
	drifts, err := gen.Check(context.Background(), changed, "out", render.FormatCSS)
	require.NoError(t, err)
	require.Len(t, drifts, 1)

	d := drifts[0]
	assert.False(t, d.Missing)
	assert.Equal(t, d.Added, d.Removed)
	assert.Contains(t, d.Diff, "-  --color-primary-500: #0891b2;")
	assert.Contains(t, d.Diff, "+  --color-primary-500: #7c3aed;")

	unchanged, err := mem.ReadFile(filepath.Join("out", "acme.css"))
	require.NoError(t, err)
	assert.Contains(t, string(unchanged), "#0891b2", "check never writes")
}

func TestCheckRejectsInvalidTheme(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(fs.NewMemory(), nil)
	cfg := acme()
	cfg.Name = "Not Valid"
	_, err := gen.Check(context.Background(), cfg, "out")
	require.Error(t, err)
}
