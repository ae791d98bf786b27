package ports

import "context"

// TxManager runs a function inside one store transaction. The transaction is
// carried through the context so every repository call made by fn shares it;
// fn returning an error rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
