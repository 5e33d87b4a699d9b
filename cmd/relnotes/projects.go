package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
	projectsvc "github.com/heartmarshall/relnotes-backend/internal/service/project"
)

var projectsCmd = &cli.Command{
	Name:  "projects",
	Usage: "manage saved project presets",
	Subcommands: []*cli.Command{
		projectsListCmd,
		projectsSaveCmd,
		projectsDeleteCmd,
	},
}

var projectsListCmd = &cli.Command{
	Name:  "list",
	Usage: "list saved projects",
	Action: func(cctx *cli.Context) error {
		svc, closeStore, err := openProjects(cctx)
		if err != nil {
			return err
		}
		defer closeStore()

		projects, err := svc.List(cctx.Context)
		if err != nil {
			return err
		}
		return printProjects(cctx.App.Writer, projects)
	},
}

var projectsSaveCmd = &cli.Command{
	Name:  "save",
	Usage: "create a project, or update one with --id",
	Flags: []cli.Flag{
		&cli.Int64Flag{Name: "id", Usage: "ID of the project to update"},
		&cli.StringFlag{Name: "name", Usage: "project name", Required: true},
		&cli.StringFlag{Name: "base", Usage: "base language code, e.g. ja", Required: true},
		&cli.StringFlag{Name: "ios", Usage: "iOS languages, e.g. ja,en"},
		&cli.StringFlag{Name: "android", Usage: "Android languages, e.g. <ja-JP></ja-JP>,<en-US></en-US>"},
	},
	Action: func(cctx *cli.Context) error {
		svc, closeStore, err := openProjects(cctx)
		if err != nil {
			return err
		}
		defer closeStore()

		saved, err := svc.Save(cctx.Context, projectsvc.SaveProjectInput{
			ID:               cctx.Int64("id"),
			Name:             cctx.String("name"),
			BaseLanguage:     cctx.String("base"),
			IOSLanguages:     cctx.String("ios"),
			AndroidLanguages: cctx.String("android"),
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cctx.App.Writer, "%s project %s (%d)\n", color.GreenString("saved"), saved.Name, saved.ID)
		return nil
	},
}

var projectsDeleteCmd = &cli.Command{
	Name:      "delete",
	Usage:     "delete a project",
	ArgsUsage: "<id>",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return cli.ShowSubcommandHelp(cctx)
		}
		id, err := strconv.ParseInt(cctx.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id %q", cctx.Args().First())
		}

		svc, closeStore, err := openProjects(cctx)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := svc.Delete(cctx.Context, id); err != nil {
			return err
		}

		fmt.Fprintf(cctx.App.Writer, "%s project %d\n", color.GreenString("deleted"), id)
		return nil
	},
}

func printProjects(w io.Writer, projects []domain.Project) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "no projects saved")
		return err
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tBase\tiOS\tAndroid\tCreated")
	for _, p := range projects {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.BaseLanguage,
			orDash(p.IOSLanguages), orDash(p.AndroidLanguages),
			p.CreatedAt().Local().Format(time.DateTime),
		)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
