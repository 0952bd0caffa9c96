package task

import "context"

// UseCase is the due-date extraction business logic.
type UseCase interface {
	// Extract parses one task title for an embedded due-date expression.
	// A title with no date expression is a normal outcome (Found=false),
	// not an error.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// ExtractBulk parses a batch of titles in one call.
	ExtractBulk(ctx context.Context, input ExtractBulkInput) (ExtractBulkOutput, error)
}
