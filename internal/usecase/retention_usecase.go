package usecase

import "context"

// SweepOutput summarizes one retention pass.
type SweepOutput struct {
	AccountsSwept  int
	AccountsFailed int
	RecordsRemoved int64
}

// RetentionUsecase removes history records older than the configured
// retention window. A sweep visits every account independently; one
// account failing does not stop the pass.
type RetentionUsecase interface {
	Sweep(ctx context.Context) (*SweepOutput, error)
}
