package auth

import (
	"context"
	"errors"
	"strings"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OperatorRepository abstracts where console accounts come from.
type OperatorRepository interface {
	GetByEmail(ctx context.Context, email string) (Operator, error)
}

// StaticOperators serves accounts configured at startup.
type StaticOperators struct {
	byEmail map[string]Operator
}

// NewStaticOperators builds a repository holding one account; an empty email yields none.
func NewStaticOperators(email, passwordHash string) *StaticOperators {
	r := &StaticOperators{byEmail: map[string]Operator{}}
	if email = strings.ToLower(strings.TrimSpace(email)); email != "" && passwordHash != "" {
		r.byEmail[email] = Operator{ID: OperatorID(email), Email: email, PasswordHash: passwordHash}
	}
	return r
}

func (r *StaticOperators) GetByEmail(_ context.Context, email string) (Operator, error) {
	op, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return Operator{}, ErrNotFound
	}
	return op, nil
}
