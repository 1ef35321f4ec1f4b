package interfaces

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

// IActivityRepository appends to the audit sheet.
type IActivityRepository interface {
	Append(ctx context.Context, a entities.Activity) error
}
