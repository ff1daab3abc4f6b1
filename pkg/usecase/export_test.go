package usecase

import (
	"context"
	"time"
)

// SetSleep replaces the calculating-delay wait for testing
func SetSleep(uc *AuditUseCase, sleep func(ctx context.Context, d time.Duration)) {
	uc.sleep = sleep
}
