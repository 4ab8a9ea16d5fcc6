package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/theme"
)

func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(out, themeTable(theme.All()))
			return nil
		},
	}
}

// swatch renders the bucket colors of th as a strip of blocks, lightest
// bucket first.
func swatch(th theme.Theme) string {
	var b strings.Builder
	for bucket := activity.BucketNone; bucket <= activity.BucketMax; bucket++ {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(th.Color(bucket))).Render("■ "))
	}
	return b.String()
}

func themeTable(themes []theme.Theme) string {
	rows := make([][]string, 0, len(themes))
	for _, th := range themes {
		rows = append(rows, []string{string(th.Name), swatch(th), th.Background, th.Wall})
	}

	header := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Theme", "Buckets", "Background", "Walls").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return header.Padding(0, 1)
			case col == 0:
				return StyleHighlight.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
