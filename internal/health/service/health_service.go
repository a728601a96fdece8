package service

import (
	"context"

	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
	"github.com/pkg/errors"
)

// Pinger is a backend that can answer a connectivity probe. Both the
// Firestore and Redis clients are adapted to it in the service manager.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService implements the readiness probe over the configured
// backends.
type HealthService struct {
	backends map[string]Pinger
}

// NewHealthService constructs the service with the named backends
// injected.
func NewHealthService(backends map[string]Pinger) *HealthService {

	return &HealthService{backends: backends}
}

// CheckReadiness probes every backend and returns the first failure.
func (s *HealthService) CheckReadiness(ctx context.Context) error {

	if log.GetLogger() == nil {
		return errors.New("logger not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	for name, backend := range s.backends {
		if err := backend.Ping(ctx); err != nil {
			return errors.Wrapf(err, "%s connectivity check failed", name)
		}
	}
	return nil
}
