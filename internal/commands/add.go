package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/service"
)

var flagNote string

var addCmd = &cobra.Command{
	Use:   "add AMOUNT CATEGORY",
	Short: "Record an expense",
	Example: `  tally add 12.50 "🍔 Food"
  tally add 899 "🛍️ Shopping" -n "new headphones"`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagNote, "note", "n", "", "Optional note")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	e, err := a.ledger.AddExpense(ctx, service.AddExpenseInput{
		Amount:   args[0],
		Category: args[1],
		Note:     flagNote,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s to %s\n", cli.FormatMoney(e.Amount), e.Category)
	return nil
}
