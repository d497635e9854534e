package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps the per server counters. All methods are
// no-ops when no querier is configured.
type AnalyticsManager struct {
	queries Querier
	inet    pqtype.Inet
}

func NewAnalyticsManager(queries Querier, serverIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries: queries,
		inet:    pqtype.Inet{IPNet: serverIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) Enabled() bool {
	return a != nil && a.queries != nil
}

func (a *AnalyticsManager) ServerInet() pqtype.Inet {
	return a.inet
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementGamesCreatedCount(ctx, a.inet)
}

func (a *AnalyticsManager) IncrementGamesFinishedCount(ctx context.Context, shots int) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementGamesFinishedCount(ctx, IncrementGamesFinishedCountParams{
		ServerIp:   a.inet,
		ShotsFired: int64(shots),
	})
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return count(a.queries.GetGamesCreatedCount(ctx, a.inet))
}

func (a *AnalyticsManager) GetGamesFinishedCount(ctx context.Context) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return count(a.queries.GetGamesFinishedCount(ctx, a.inet))
}

func (a *AnalyticsManager) GetShotsFiredCount(ctx context.Context) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return count(a.queries.GetShotsFiredCount(ctx, a.inet))
}

// A server that never recorded anything has no row yet.
func count(n int64, err error) (int64, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}
