package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixedTokens struct{}

func (fixedTokens) Generate(_ context.Context, op Operator) (string, error) {
	return "token-for-" + op.Email, nil
}

func newTestService(t *testing.T) AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(NewStaticOperators("Ops@SwiftStream.example", string(hash)), fixedTokens{})
}

func TestLoginSucceeds(t *testing.T) {
	res, err := newTestService(t).Login(context.Background(), "ops@swiftstream.example", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "token-for-ops@swiftstream.example", res.Token)
	assert.Equal(t, OperatorID("OPS@swiftstream.example"), res.Operator.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)
	for _, c := range [][2]string{
		{"ops@swiftstream.example", "wrong"},
		{"someone@else.example", "s3cret"},
		{"", "s3cret"},
		{"ops@swiftstream.example", ""},
	} {
		_, err := svc.Login(context.Background(), c[0], c[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, c)
	}
}

func TestStaticOperatorsEmpty(t *testing.T) {
	_, err := NewStaticOperators("", "").GetByEmail(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
