package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner executes fn inside an atomic read-modify-write transaction. The
// services re-run their conflict checks through the ctx they receive so two
// racing writers cannot both commit.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type mongoTxRunner struct {
	client *mongo.Client
}

func NewTxRunner(client *mongo.Client) TxRunner {
	return &mongoTxRunner{client: client}
}

func (r *mongoTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	// session.WithTransaction retries transient store conflicts on its own;
	// business errors returned by fn surface unchanged.
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
