package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/monee/internal/model"
)

func saveTransactionsTx(ctx context.Context, tx *sql.Tx, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (id, date, description, category, amount, type)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		if _, err := stmt.ExecContext(ctx,
			txn.ID, txn.Date, txn.Description, txn.Category, txn.Amount, string(txn.Type)); err != nil {
			return fmt.Errorf("failed to save transaction %d: %w", txn.ID, err)
		}
	}
	return nil
}

// Rows come back in id order, which is also ledger order.
func loadTransactionsTx(ctx context.Context, tx *sql.Tx) ([]model.Transaction, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, date, description, category, amount, type
		FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var kind string
		if err := rows.Scan(&txn.ID, &txn.Date, &txn.Description, &txn.Category, &txn.Amount, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Type = model.TransactionType(kind)
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
