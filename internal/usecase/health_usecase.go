package usecase

import "context"

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db Pinger
}

// NewHealthUsecase reports liveness. db may be nil when running on the
// in-memory store.
func NewHealthUsecase(db Pinger) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	if u.db == nil {
		return map[string]string{"status": "ok", "storage": "memory"}, true
	}
	if err := u.db.Ping(ctx); err != nil {
		return map[string]string{"status": "degraded", "storage": "postgres"}, false
	}
	return map[string]string{"status": "ok", "storage": "postgres"}, true
}
