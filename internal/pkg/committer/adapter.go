package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply runs every statement of the plan in one read-write transaction and
// returns the affected-row count of each, in plan order.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) ([]int64, error) {
	if plan == nil || plan.IsEmpty() {
		return nil, nil
	}

	if a.client == nil {
		return nil, fmt.Errorf("committer: spanner client is nil")
	}

	var counts []int64
	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		var err error
		counts, err = tx.BatchUpdate(ctx, plan.Statements())
		return err
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// ApplyReturning runs a single DML statement with a THEN RETURN clause and
// scans the first returned row into dst.
func (a *Adapter) ApplyReturning(ctx context.Context, stmt spanner.Statement, dst ...interface{}) error {
	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		iter := tx.Query(ctx, stmt)
		defer iter.Stop()

		row, err := iter.Next()
		if err == iterator.Done {
			return fmt.Errorf("committer: statement returned no rows")
		}
		if err != nil {
			return err
		}
		return row.Columns(dst...)
	})
	return err
}
