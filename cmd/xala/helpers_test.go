package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xala-technologies/xala-cli/internal/config"
	"github.com/xala-technologies/xala-cli/internal/infrastructure/fs"
)

func newTestApp(t *testing.T) *AppContext {
	t.Helper()
	app := newAppContext(fs.NewOS(), t.TempDir(), nil)
	app.IsInteractive = func() bool { return false }
	return app
}

// syncBuffer guards concurrent log writes from batch generation.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, app *AppContext, args ...string) runResult {
	t.Helper()

	root := newRootCmd(app)
	var stdout, stderr syncBuffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--log-format", "json", "--log-level", "debug"}, args...))

	err := root.Execute()
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, app *AppContext, rel, content string) {
	t.Helper()
	path := filepath.Join(app.WorkDir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readProjectConfig(t *testing.T, app *AppContext) config.ProjectConfig {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(app.WorkDir, config.FileName))
	require.NoError(t, err)
	var cfg config.ProjectConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	return cfg
}
