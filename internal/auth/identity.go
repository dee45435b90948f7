package auth

import (
	"errors"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// ErrInvalidToken is returned by Verify for any credential that cannot be
// trusted: malformed, badly signed, expired, or carrying unknown claims.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller behind a request.
type Identity struct {
	SubjectID int64
	Role      domain.Role
}
