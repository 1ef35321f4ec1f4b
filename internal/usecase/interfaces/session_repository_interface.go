package interfaces

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

// ISessionRepository stores server-side sessions.
//
// Get returns a zero Session (empty ID) for unknown or expired ids.
type ISessionRepository interface {
	Get(ctx context.Context, id string) (entities.Session, error)
	Save(ctx context.Context, s entities.Session) error
	Delete(ctx context.Context, id string) error
}
