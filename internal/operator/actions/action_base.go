// Package actions holds the write operations. Each action runs inside one
// transaction on a storage.Writer and leaves its outcome in exported result
// fields for the caller to read after OperatorDelegator.Process returns.
package actions

import (
	"context"

	"github.com/carson-networks/prefin/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
