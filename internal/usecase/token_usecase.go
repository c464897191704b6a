package usecase

import (
	"context"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenUsecase guards every outbound use of a stored platform credential.
// Callers never read tokens off the record directly; they ask here and get
// one that is valid right now or a typed error telling them why not.
type TokenUsecase interface {
	// ValidAccessToken returns a usable access token for the user's linked
	// account on platform, silently refreshing it first when it has expired
	// and a refresh token is on file. ErrAccountNotLinked when nothing is
	// linked; ErrReconnectRequired when refresh is impossible or rejected.
	ValidAccessToken(ctx context.Context, userID uuid.UUID, platform entity.Platform) (string, error)
}
