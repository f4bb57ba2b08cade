package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initGitRepo(t *testing.T, dir string) {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Xala",
			Email: "dev@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func TestDetectUsesWorktreeRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "Design_System")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "packages", "web"), 0o755))
	initGitRepo(t, root)

	ws, err := Detect(filepath.Join(root, "packages", "web"))
	require.NoError(t, err)
	assert.True(t, ws.IsGit)
	assert.Equal(t, "design-system", ws.Name)
	assert.Equal(t, "master", ws.Branch)

	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(ws.Root)
	require.NoError(t, err)
	assert.Equal(t, resolved, got)
}

func TestDetectWithoutRepository(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "My App")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	ws, err := Detect(dir)
	require.NoError(t, err)
	assert.False(t, ws.IsGit)
	assert.Equal(t, "my-app", ws.Name)
	assert.Equal(t, "my-app", ProjectName(dir, "fallback"))
}

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Acme":          "acme",
		"  Acme Corp  ": "acme-corp",
		"my_app.v2":     "my-app-v2",
		"---":           "",
		"nordic-health": "nordic-health",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}
