package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xala-technologies/xala-cli/internal/infrastructure/fs"
	"github.com/xala-technologies/xala-cli/internal/infrastructure/logging"
)

func main() {
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve working directory: %v\n", err)
		os.Exit(1)
	}

	buffer := logging.NewEventBuffer(0)
	app := newAppContext(fs.NewOS(), workDir, buffer)
	app.Logger.Debug(context.Background(), "xala starting", "args", os.Args[1:], "work_dir", workDir)

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
