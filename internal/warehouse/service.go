//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quickdrop/quickdrop-dash/internal/logging"
)

// DB is the backend seam the service executes against. *pgxpool.Pool and
// *pgx.Conn both satisfy it; tests substitute a stub.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Default row limits for the limited panels, applied when the caller
// passes n == 0.
const (
	DefaultTopProductsLimit = 10
	DefaultTopClientsLimit  = 15
	DefaultTopCouriersLimit = 20
)

// DefaultCacheTTL is how long a panel result stays fresh when the caller
// does not configure a TTL.
const DefaultCacheTTL = 5 * time.Minute

// Options configures a Service.
type Options struct {
	// CacheTTL is the result cache window. Zero means DefaultCacheTTL;
	// negative disables caching.
	CacheTTL time.Duration
}

// Service is the aggregation service: one operation per catalog entry
// plus the derived delivery-minutes metric. The backend handle is
// injected at construction and owned by the caller; the service holds no
// ambient global state. All operations are read-only, independent, and
// safe to call concurrently.
type Service struct {
	db    DB
	cache *resultCache
}

// NewService creates a Service on top of an already-connected backend.
func NewService(db DB, opts Options) *Service {
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		db:    db,
		cache: newResultCache(ttl),
	}
}

// Close releases service-owned resources. It does not close the injected
// backend handle; its lifecycle belongs to the caller.
func (s *Service) Close() {
	s.cache.close()
}

// Trend returns revenue, quantity and transaction counts grouped by
// (year, month), ascending.
func (s *Service) Trend(ctx context.Context, f FilterSet) ([]TrendRow, error) {
	return fetchCached(ctx, s, QueryTrend, f, 0, scanTrendRow)
}

// TopProducts returns the n highest-revenue products. n == 0 selects
// DefaultTopProductsLimit.
func (s *Service) TopProducts(ctx context.Context, f FilterSet, n int) ([]TopProductRow, error) {
	if n == 0 {
		n = DefaultTopProductsLimit
	}
	return fetchCached(ctx, s, QueryTopProducts, f, n, scanTopProductRow)
}

// CityStore returns revenue and units per store, grouped by city.
func (s *Service) CityStore(ctx context.Context, f FilterSet) ([]CityStoreRow, error) {
	return fetchCached(ctx, s, QueryCityStore, f, 0, scanCityStoreRow)
}

// PayMix returns revenue and transaction counts per payment method.
func (s *Service) PayMix(ctx context.Context, f FilterSet) ([]PayMixRow, error) {
	return fetchCached(ctx, s, QueryPayMix, f, 0, scanPayMixRow)
}

// DeliveryStatus returns delivery counts and revenue per delivery status.
func (s *Service) DeliveryStatus(ctx context.Context, f FilterSet) ([]DeliveryStatusRow, error) {
	return fetchCached(ctx, s, QueryDeliveryStatus, f, 0, scanDeliveryStatusRow)
}

// TopClients returns the n highest-revenue customers. n == 0 selects
// DefaultTopClientsLimit.
func (s *Service) TopClients(ctx context.Context, f FilterSet, n int) ([]TopClientRow, error) {
	if n == 0 {
		n = DefaultTopClientsLimit
	}
	return fetchCached(ctx, s, QueryTopClients, f, n, scanTopClientRow)
}

// TopCouriers returns the n busiest couriers. n == 0 selects
// DefaultTopCouriersLimit.
func (s *Service) TopCouriers(ctx context.Context, f FilterSet, n int) ([]TopCourierRow, error) {
	if n == 0 {
		n = DefaultTopCouriersLimit
	}
	return fetchCached(ctx, s, QueryTopCouriers, f, n, scanTopCourierRow)
}

// ClientsByCity returns distinct customer counts and revenue per city.
func (s *Service) ClientsByCity(ctx context.Context, f FilterSet) ([]ClientsByCityRow, error) {
	return fetchCached(ctx, s, QueryClientsByCity, f, 0, scanClientsByCityRow)
}

var digitRun = regexp.MustCompile(`\d+`)

// DeliveryMinutes fetches the raw delivery-duration text for the
// filtered selection and parses each non-null value's first digit run as
// a minute count. Values without any digits ("sin datos") are silently
// dropped; that is the only silent drop the service performs. An empty
// result is a valid "no data" state, not an error. Ordering follows
// source row order.
func (s *Service) DeliveryMinutes(ctx context.Context, f FilterSet) ([]int, error) {
	const name = QueryName("delivery_minutes")

	key := cacheKey(name, f, 0)
	if v, ok := s.cache.get(key); ok {
		return v.([]int), nil
	}

	where, args := BuildPredicate(f)
	sql := strings.Replace(deliveryTimeSQL, "{where}", where, 1)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classifyQueryErr(name, err)
	}

	raw, err := collectRows(rows, func(rows pgx.Rows) (*string, error) {
		var v *string
		err := rows.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, classifyQueryErr(name, err)
	}

	minutes := make([]int, 0, len(raw))
	for _, v := range raw {
		if v == nil {
			continue
		}
		run := digitRun.FindString(*v)
		if run == "" {
			continue
		}
		m, err := strconv.Atoi(run)
		if err != nil {
			// Digit runs longer than an int are garbage input, treated
			// the same as no digits at all.
			continue
		}
		minutes = append(minutes, m)
	}

	logging.Debug().
		Int("fetched", len(raw)).
		Int("parsed", len(minutes)).
		Msg("Parsed delivery minutes")

	s.cache.put(key, minutes)
	return minutes, nil
}

// fetchCached runs the named catalog query with the shared predicate,
// returning a cached snapshot when one is still fresh.
func fetchCached[T any](
	ctx context.Context,
	s *Service,
	name QueryName,
	f FilterSet,
	limit int,
	scan func(pgx.Rows) (T, error),
) ([]T, error) {
	key := cacheKey(name, f, limit)
	if v, ok := s.cache.get(key); ok {
		return v.([]T), nil
	}

	sql, args, err := buildSQL(name, f, limit)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classifyQueryErr(name, err)
	}

	out, err := collectRows(rows, scan)
	if err != nil {
		return nil, classifyQueryErr(name, err)
	}

	logging.Debug().
		Str("query", string(name)).
		Int("rows", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("Executed panel query")

	s.cache.put(key, out)
	return out, nil
}

func cacheKey(name QueryName, f FilterSet, limit int) string {
	return fmt.Sprintf("%s|%s|limit=%d", name, f.Key(), limit)
}
