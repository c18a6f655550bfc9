package server

import (
	"context"

	"lastgame-service/internal/refresh"
)

// Refresher defines the minimal refresh-loop behavior needed by the server.
type Refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() refresh.Status
}
