// Command relnotes drafts localized release notes from the terminal. It keeps
// project presets in a local bbolt database and calls a running relnotes
// server to generate the notes.
//
// Usage:
//
//	relnotes projects save --name Shop --base ja --ios ja,en --android "<ja-JP></ja-JP>,<en-US></en-US>"
//	relnotes projects list
//	relnotes generate --project 1700000000000 --file notes.txt
//	relnotes generate --base en --ios en,fr --platform ios --content "Bug fixes"
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	boltdb "github.com/heartmarshall/relnotes-backend/internal/adapter/bolt"
	boltproject "github.com/heartmarshall/relnotes-backend/internal/adapter/bolt/project"
	"github.com/heartmarshall/relnotes-backend/internal/app"
	"github.com/heartmarshall/relnotes-backend/internal/client"
	projectsvc "github.com/heartmarshall/relnotes-backend/internal/service/project"
)

var storeFlag = &cli.StringFlag{
	Name:      "store",
	Usage:     "path to the local project database",
	EnvVars:   []string{"RELNOTES_STORE"},
	Value:     boltdb.DefaultPath,
	TakesFile: true,
}

var serverFlag = &cli.StringFlag{
	Name:    "server",
	Usage:   "base URL of the relnotes server",
	EnvVars: []string{"RELNOTES_SERVER"},
	Value:   client.DefaultBaseURL,
}

var verboseFlag = &cli.BoolFlag{
	Name:    "verbose",
	Aliases: []string{"v"},
	Usage:   "log requests to stderr",
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "relnotes",
		Usage:   "draft App Store and Google Play release notes in many languages",
		Version: app.BuildVersion(),
		Flags:   []cli.Flag{storeFlag, serverFlag, verboseFlag},
		Commands: []*cli.Command{
			projectsCmd,
			generateCmd,
		},
	}
}

func newLogger(cctx *cli.Context) *slog.Logger {
	level := slog.LevelWarn
	if cctx.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openProjects opens the local store and returns the project service on top
// of it. The returned func closes the database.
func openProjects(cctx *cli.Context) (*projectsvc.Service, func(), error) {
	db, err := boltdb.Open(cctx.String(storeFlag.Name))
	if err != nil {
		return nil, nil, err
	}

	repo, err := boltproject.New(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return projectsvc.NewService(newLogger(cctx), repo), func() { _ = db.Close() }, nil
}
