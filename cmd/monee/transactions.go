package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/monee/internal/cli"
	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/session"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func transactionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List or add ledger transactions",
	}
	cmd.AddCommand(transactionsListCmd(a), transactionsAddCmd(a))
	return cmd
}

func transactionsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.view(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTransactions(state.User().Transactions))
			return nil
		},
	}
}

func transactionsAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Add a transaction by hand",
		Long: `Add a transaction by hand. A negative amount is recorded as an expense,
any other amount as income unless --type says otherwise.

Examples:
  monee transactions add "Coffee" -- -4.50
  monee transactions add "Freelance work" 300 --category Salary`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			kind, _ := cmd.Flags().GetString("type")
			category, _ := cmd.Flags().GetString("category")

			draft, err := buildTransaction(args[0], args[1], date, kind, category)
			if err != nil {
				return err
			}

			var added model.Transaction
			_, err = a.mutate(cmd.Context(), func(s session.State) (session.State, error) {
				next, tx, err := session.AddTransaction(s, draft)
				added = tx
				return next, err
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added transaction #%d: %s %s",
				added.ID, added.Description, cli.FormatMoney(added.Amount))))
			return nil
		},
	}

	cmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().String("type", "", "expense or income (default from the amount's sign)")
	cmd.Flags().String("category", "", "category (default General)")
	return cmd
}

func buildTransaction(description, amount, date, kind, category string) (model.Transaction, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: amount %q is not a number", common.ErrInvalidInput, amount)
	}

	txType := model.TypeForSignedAmount(value)
	if kind != "" {
		txType = model.TransactionType(strings.ToLower(kind))
		if !txType.Valid() {
			return model.Transaction{}, fmt.Errorf("%w: type must be expense or income", common.ErrInvalidInput)
		}
	}

	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}

	return model.Transaction{
		Date:        date,
		Description: description,
		Amount:      value.Abs(),
		Type:        txType,
		Category:    category,
	}, nil
}
