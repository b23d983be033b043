package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all expenses, categories and the budget",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	if !flagYes {
		return fmt.Errorf("refusing to clear without --yes")
	}

	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.ledger.ClearAll(ctx); err != nil {
		return err
	}
	fmt.Println("All data cleared. Defaults will be restored on next run.")
	return nil
}
