package cli

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/pacmaze/pkg/io"
	"github.com/matzehuels/pacmaze/pkg/pipeline"
)

func (c *CLI) fetchCommand() *cobra.Command {
	var (
		output  string
		refresh bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [user]",
		Short: "Save a user's contribution calendar to a file",
		Long: `Fetch downloads the contribution calendar of a GitHub user and writes it
as JSON or YAML (by file extension). Use "-o -" for JSON on stdout. The file
can be rendered later, offline, with "pacmaze render --input".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			login := c.settings().User
			if len(args) == 1 {
				login = args[0]
			}
			return c.runFetch(cmd.Context(), login, output, refresh, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "calendar.json", "output file (.json, .yaml, .yml or -)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore the cached calendar")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runFetch(ctx context.Context, login, output string, refresh, noCache bool) error {
	runner, err := c.newRunner(noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Fetching calendar of @"+login)
	spinner.Start()
	cal, err := runner.Load(ctx, pipeline.Options{Login: login, Refresh: refresh, Logger: c.Logger})
	spinner.Stop()
	if err != nil {
		return err
	}

	if output == "-" {
		return pkgio.WriteCalendar(out, cal, pkgio.FormatJSON)
	}
	if err := pkgio.ExportCalendar(cal, output); err != nil {
		return err
	}

	printSuccess("Saved calendar of %s", StyleHighlight.Render("@"+login))
	printKeyValue("weeks", humanize.Comma(int64(len(cal.Weeks))))
	printKeyValue("total", humanize.Comma(int64(cal.Total)))
	if info, err := os.Stat(output); err == nil {
		printFile(output, int(info.Size()))
	}
	printNextStep("Render it offline", "pacmaze render --input "+output)
	return nil
}
