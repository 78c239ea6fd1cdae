package apiutil

import (
	"context"

	"github.com/carson-networks/prefin/internal/operator/actions"
)

// ActionProcessor runs a write action in a transaction. It is satisfied by
// *operator.OperatorDelegator.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
