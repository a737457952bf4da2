// Package databasetest provides a TxManager for unit tests that have no database.
package databasetest

import "context"

// TxManager runs fn directly and counts the transactions it was asked to open.
type TxManager struct {
	Calls int
}

func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}
