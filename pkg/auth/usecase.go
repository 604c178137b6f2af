package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes console login.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	Operator Operator
	Token    string
}

type authService struct {
	repo   OperatorRepository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo OperatorRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	op, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, op)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Operator: op, Token: token}, nil
}
