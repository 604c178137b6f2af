package auth

import "context"

// TokenGenerator abstracts token creation (e.g., JWT).
type TokenGenerator interface {
	Generate(ctx context.Context, op Operator) (string, error)
}
