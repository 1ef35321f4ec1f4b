package interfaces

import "context"

// ISchemaBootstrapper makes sure a table exists with its expected header.
type ISchemaBootstrapper interface {
	Bootstrap(ctx context.Context) error
}
