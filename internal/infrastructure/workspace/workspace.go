// Package workspace inspects the directory the CLI runs in.
package workspace

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	git "github.com/go-git/go-git/v5"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Workspace describes the project root around a directory.
type Workspace struct {
	Root   string
	Name   string
	IsGit  bool
	Branch string
}

// Detect walks up from dir looking for a git repository. The worktree root
// names the project; without a repository dir itself does.
func Detect(dir string) (Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Workspace{}, err
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Workspace{Root: abs, Name: Slug(filepath.Base(abs))}, nil
	}
	if err != nil {
		return Workspace{}, err
	}

	ws := Workspace{Root: abs, IsGit: true}
	if wt, err := repo.Worktree(); err == nil {
		ws.Root = wt.Filesystem.Root()
	}
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		ws.Branch = head.Name().Short()
	}
	ws.Name = Slug(filepath.Base(ws.Root))
	return ws, nil
}

// ProjectName returns the detected project name, or fallback when detection fails.
func ProjectName(dir, fallback string) string {
	ws, err := Detect(dir)
	if err != nil || ws.Name == "" {
		return fallback
	}
	return ws.Name
}

// Slug lower-cases s and collapses every run of other characters into a dash.
func Slug(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
