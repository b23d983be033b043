package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/aggregate"
	"tally/internal/cli"
)

var (
	flagCategory string
	flagSearch   string
	flagSort     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses grouped by day",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagCategory, "category", "c", aggregate.CategoryAll, "Filter by category")
	listCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Filter notes by substring")
	listCmd.Flags().StringVar(&flagSort, "sort", aggregate.SortLatest, "Sort mode: latest or highest")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	snap, err := a.ledger.Snapshot(ctx)
	if err != nil {
		return err
	}

	view := aggregate.View(snap.Expenses, aggregate.ViewOptions{
		Category: flagCategory,
		Search:   flagSearch,
		Sort:     flagSort,
	})
	if len(view) == 0 {
		fmt.Println("No expenses found.")
		return nil
	}

	for _, group := range aggregate.GroupByDate(view, a.cfg.GroupOrder) {
		rows := make([][]string, 0, len(group.Expenses))
		for _, e := range group.Expenses {
			note := e.Note
			if note == "" {
				note = "-"
			}
			rows = append(rows, []string{e.Category, note, cli.FormatMoney(e.Amount)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   group.Label,
			Headers: []string{"Category", "Note", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	return nil
}
