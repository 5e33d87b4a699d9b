package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/relnotes-backend/internal/client"
	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

var generateCmd = &cli.Command{
	Name:  "generate",
	Usage: "generate localized release notes",
	Description: `Languages come from --project, and --base/--ios/--android override
   the project's values. The notes text is read from --content, or from
   --file ("-" reads stdin).

   By default each platform is requested separately and concurrently, and
   each result is printed as soon as it arrives. --combined sends a single
   request for both platforms instead.`,
	Flags: []cli.Flag{
		&cli.Int64Flag{Name: "project", Aliases: []string{"p"}, Usage: "ID of a saved project"},
		&cli.StringFlag{Name: "base", Usage: "base language code"},
		&cli.StringFlag{Name: "ios", Usage: "iOS languages, e.g. ja,en"},
		&cli.StringFlag{Name: "android", Usage: "Android languages, e.g. <ja-JP></ja-JP>,<en-US></en-US>"},
		&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "release notes in the base language"},
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read release notes from a file", TakesFile: true},
		&cli.StringFlag{Name: "platform", Value: "both", Usage: "ios, android or both"},
		&cli.BoolFlag{Name: "combined", Usage: "use the single combined endpoint"},
	},
	Action: generateAction,
}

func generateAction(cctx *cli.Context) error {
	sel, ok := domain.ParseSelection(cctx.String("platform"))
	if !ok {
		return fmt.Errorf("--platform must be ios, android or both, got %q", cctx.String("platform"))
	}

	content, err := readContent(cctx)
	if err != nil {
		return err
	}

	req, err := buildRequest(cctx, content)
	if err != nil {
		return err
	}

	api := client.New(cctx.String(serverFlag.Name), client.DefaultTimeout, newLogger(cctx))

	if cctx.Bool("combined") {
		return runCombined(cctx.Context, api, req, sel, cctx.App.Writer)
	}
	return runSplit(cctx.Context, api, req, sel, cctx.App.Writer)
}

func readContent(cctx *cli.Context) (string, error) {
	content, file := cctx.String("content"), cctx.String("file")
	if content != "" && file != "" {
		return "", errors.New("use either --content or --file, not both")
	}

	if file != "" {
		var (
			raw []byte
			err error
		)
		if file == "-" {
			raw, err = io.ReadAll(cctx.App.Reader)
		} else {
			raw, err = os.ReadFile(file)
		}
		if err != nil {
			return "", fmt.Errorf("read content: %w", err)
		}
		content = string(raw)
	}

	if strings.TrimSpace(content) == "" {
		return "", errors.New("release notes content is empty: pass --content or --file")
	}
	return content, nil
}

func buildRequest(cctx *cli.Context, content string) (domain.ReleaseNoteRequest, error) {
	req := domain.ReleaseNoteRequest{Content: content}

	if cctx.IsSet("project") {
		svc, closeStore, err := openProjects(cctx)
		if err != nil {
			return req, err
		}
		defer closeStore()

		p, err := svc.Get(cctx.Context, cctx.Int64("project"))
		if err != nil {
			return req, err
		}
		req = p.Request(content)
	}

	if cctx.IsSet("base") {
		req.BaseLanguage = cctx.String("base")
	}
	if cctx.IsSet("ios") {
		req.IOSLanguages = cctx.String("ios")
	}
	if cctx.IsSet("android") {
		req.AndroidLanguages = cctx.String("android")
	}
	return req, nil
}

// generator is the subset of the API client the generate command uses.
type generator interface {
	Generate(ctx context.Context, req domain.ReleaseNoteRequest) (*client.Response, error)
	GeneratePlatform(ctx context.Context, p domain.Platform, req domain.ReleaseNoteRequest) (*client.Response, error)
}

// runSplit requests every selected platform concurrently and prints each
// result as it arrives. A failed platform does not stop the others; the
// returned error lists the failures.
func runSplit(ctx context.Context, api generator, req domain.ReleaseNoteRequest, sel domain.Selection, w io.Writer) error {
	var (
		mu       sync.Mutex
		failures []error
	)

	var g errgroup.Group
	for _, p := range sel.Platforms() {
		g.Go(func() error {
			resp, err := api.GeneratePlatform(ctx, p, req)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				failures = append(failures, fmt.Errorf("%s: %w", p.DisplayName(), err))
				printFailure(w, p, err.Error())
				return nil
			}
			printPlatform(w, p, resp)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(failures...)
}

// runCombined sends one request for all selected platforms.
func runCombined(ctx context.Context, api generator, req domain.ReleaseNoteRequest, sel domain.Selection, w io.Writer) error {
	if sel != domain.SelectBoth {
		resp, err := api.GeneratePlatform(ctx, sel.Platforms()[0], req)
		if err != nil {
			return err
		}
		printPlatform(w, sel.Platforms()[0], resp)
		return nil
	}

	resp, err := api.Generate(ctx, req)
	if err != nil {
		return err
	}

	var failed []string
	for _, p := range sel.Platforms() {
		if msg, ok := resp.Errors[p.String()]; ok {
			printFailure(w, p, msg)
			failed = append(failed, p.DisplayName())
			continue
		}
		printPlatform(w, p, resp)
	}

	if len(failed) > 0 {
		return fmt.Errorf("generation failed for %s", strings.Join(failed, ", "))
	}
	return nil
}

func printPlatform(w io.Writer, p domain.Platform, resp *client.Response) {
	fmt.Fprintln(w, color.CyanString("== %s ==", p.DisplayName()))

	switch p {
	case domain.PlatformIOS:
		if len(resp.IOS) == 0 {
			fmt.Fprintln(w, color.YellowString("(no notes in the response)"))
			return
		}
		out, _ := json.MarshalIndent(resp.IOS, "", "  ")
		fmt.Fprintln(w, string(out))
	case domain.PlatformAndroid:
		if resp.Android == nil || *resp.Android == "" {
			fmt.Fprintln(w, color.YellowString("(no notes in the response)"))
			return
		}
		fmt.Fprintln(w, *resp.Android)
		langs := lo.Map(resp.AndroidEntries, func(e domain.LocalizedNote, _ int) string { return e.Language })
		if len(langs) > 0 {
			fmt.Fprintln(w, color.HiBlackString("languages: %s", strings.Join(langs, ", ")))
		}
	}
	fmt.Fprintln(w)
}

func printFailure(w io.Writer, p domain.Platform, msg string) {
	fmt.Fprintln(w, color.CyanString("== %s ==", p.DisplayName()))
	fmt.Fprintln(w, color.RedString("failed: %s", msg))
	fmt.Fprintln(w)
}
