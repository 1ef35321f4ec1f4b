package usecase

import (
	"context"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type IActivityLogger interface {
	Record(ctx context.Context, action, description, user, ip string)
}

// ActivityLogger appends admin actions to the activity sheet. Failures are
// logged and never reach the caller.
type ActivityLogger struct {
	repo interfaces.IActivityRepository
	now  func() time.Time
}

var _ IActivityLogger = (*ActivityLogger)(nil)

func NewActivityLogger(repo interfaces.IActivityRepository) *ActivityLogger {
	return &ActivityLogger{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (a *ActivityLogger) Record(ctx context.Context, action, description, user, ip string) {
	if a == nil || a.repo == nil {
		return
	}
	err := a.repo.Append(ctx, entities.Activity{
		Timestamp:   a.now(),
		Action:      action,
		Description: description,
		User:        user,
		IPAddress:   ip,
	})
	if err != nil {
		logger.FromContext(ctx).Warn("[activity][usecase] append failed", zap.String("action", action), zap.Error(err))
	}
}
