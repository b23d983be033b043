package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/cli"
)

var budgetCmd = &cobra.Command{
	Use:   "budget AMOUNT",
	Short: "Set the monthly budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	budget, err := a.ledger.SetBudget(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Monthly budget set to %s\n", cli.FormatMoney(budget))
	return nil
}
