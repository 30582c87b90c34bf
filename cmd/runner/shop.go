package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gensyn-runner/internal/runner"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Show the upgrade catalog",
	Long: `Lists every upgrade the shop terminals can offer. Each visit offers
three of them at random; one-time upgrades disappear once bought.`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

func runShop(cmd *cobra.Command, _ []string) {
	fmt.Fprintln(cmd.OutOrStdout(), catalogTable().View())
}

// catalogTable lays the catalog out as a static table.
func catalogTable() table.Model {
	columns := []table.Column{
		{Title: "Upgrade", Width: 16},
		{Title: "Cost", Width: 6},
		{Title: "Once", Width: 5},
		{Title: "Effect", Width: 52},
	}

	items := runner.Catalog()
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		once := ""
		if item.OneTime {
			once = "yes"
		}
		rows = append(rows, table.Row{item.Name, fmt.Sprintf("%d", item.Cost), once, item.Description})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#8B6B4E")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}
