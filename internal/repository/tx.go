package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

type txKey struct{}

var errNoTx = errors.New("locking query outside a transaction")

// TxManager opens one transaction on the master and threads it through the
// context, so every repository call inside the closure reads and writes the
// same snapshot. An error from the closure rolls everything back.
type TxManager struct {
	db *dbpg.DB
}

func NewTxManager(db *dbpg.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func txFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// mustTxFrom guards queries that only make sense with rows locked.
func mustTxFrom(ctx context.Context) (*sql.Tx, error) {
	tx, ok := txFrom(ctx)
	if !ok {
		return nil, errNoTx
	}
	return tx, nil
}

type row interface {
	Scan(dest ...any) error
}
