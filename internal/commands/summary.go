package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tally/internal/aggregate"
	"tally/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending totals, budget status and category breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
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

	now := time.Now()
	totals := aggregate.ComputeTotals(snap.Expenses, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSE SUMMARY  " + now.Format("Jan 2006")))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Period", "Spent"},
		Rows: [][]string{
			{"Today", cli.FormatMoney(totals.Today)},
			{"This Week", cli.FormatMoney(totals.Week)},
			{"This Month", cli.FormatMoney(totals.Month)},
		},
	}))

	fmt.Println()
	fmt.Println("  " + cli.RenderBudgetBar(totals.Month, snap.Budget, 30))
	if aggregate.BudgetExceeded(totals.Month, snap.Budget) {
		fmt.Println("  " + cli.RenderBudgetAlert(snap.Budget))
	}

	shares := aggregate.Breakdown(snap.Expenses)
	if len(shares) > 0 {
		rows := make([][]string, 0, len(shares))
		for _, s := range shares {
			rows = append(rows, []string{s.Category, cli.FormatMoney(s.Amount), cli.FormatPercent(s.Percent)})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By Category",
			Headers: []string{"Category", "Amount", "Share"},
			Rows:    rows,
		}))
	}

	return nil
}
