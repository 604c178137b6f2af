package auth

import (
	"strings"

	"github.com/google/uuid"
)

// Operator is a console user allowed to edit shipment records.
type Operator struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}

// OperatorID derives a stable id from the login email.
func OperatorID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("swiftstream:operator:"+strings.ToLower(strings.TrimSpace(email))))
}
