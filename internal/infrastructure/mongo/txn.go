package mongo

import (
	"context"
)

// RunInTransaction wraps fn in a single multi-document Mongo session
// transaction, implementing repositories.PropagationRunner. The session's
// default read/write concern is snapshot-isolated across the category,
// catalogue-items, and items collections, satisfying the Property
// Propagation Coordinator's all-or-nothing requirement (§4.3). The caller's
// context deadline governs the whole transaction; on deadline expiry the
// driver aborts and the transaction never commits.
func (d *Database) RunInTransaction(ctx context.Context, fn func(sessCtx context.Context) error) error {
	session, err := d.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx context.Context) (any, error) {
		return nil, fn(sessCtx)
	})
	return err
}
