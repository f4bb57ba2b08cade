package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	themeapp "github.com/xala-technologies/xala-cli/internal/application/theme"
	"github.com/xala-technologies/xala-cli/internal/config"
	"github.com/xala-technologies/xala-cli/internal/infrastructure/logging"
	"github.com/xala-technologies/xala-cli/internal/infrastructure/themefile"
	"github.com/xala-technologies/xala-cli/internal/infrastructure/workspace"
	"github.com/xala-technologies/xala-cli/internal/ports"
)

const fallbackProjectName = "xala-project"

// AppContext bundles the services created once per invocation.
type AppContext struct {
	FS        ports.FileSystem
	WorkDir   string
	Logger    ports.Logger
	Store     *config.Store
	Generator *themeapp.Generator
	Themes    *themefile.Loader

	// IsInteractive reports whether forms may prompt the user.
	IsInteractive func() bool

	buffer *logging.EventBuffer
}

func newAppContext(fsys ports.FileSystem, workDir string, buffer *logging.EventBuffer) *AppContext {
	app := &AppContext{
		FS:            fsys,
		WorkDir:       workDir,
		Logger:        logging.NewNoOpLogger(),
		IsInteractive: stdioIsTerminal,
		buffer:        buffer,
	}
	if buffer != nil {
		app.Logger = logging.NewBufferedLogger(buffer)
	}
	return app
}

// configure replaces the startup logger with the sink selected by flags,
// replays anything logged so far and builds the services.
func (a *AppContext) configure(flags *rootFlags, stderr io.Writer) error {
	log, err := buildLogger(flags, stderr)
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use --log-format text|json|auto and --log-level debug|info|warn|error.")
	}
	if a.buffer != nil {
		a.buffer.Flush(log)
	}
	a.Logger = log

	configPath := flags.configPath
	if configPath == "" {
		configPath = config.FileName
	}
	projectName := workspace.ProjectName(a.WorkDir, fallbackProjectName)

	a.Store = config.NewStore(a.FS, a.path(configPath), log, config.WithDefaultName(projectName))
	a.Generator = themeapp.NewGenerator(a.FS, log)
	a.Themes = themefile.NewLoader(a.FS, log.With("component", "theme_loader"))
	return nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger tagged with the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	log := a.Logger
	if log == nil {
		log = logging.NewNoOpLogger()
	}
	return ctx, log.With("command", name)
}

// path resolves p against the working directory.
func (a *AppContext) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.WorkDir, p)
}

// relative shortens p for display when it lives under the working directory.
func (a *AppContext) relative(p string) string {
	rel, err := filepath.Rel(a.WorkDir, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return rel
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
