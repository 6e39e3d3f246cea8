package warehouse

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ConnectionError indicates the warehouse was unreachable or refused
// authentication. It is terminal for the operation that hit it; callers
// retry manually, never automatically.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("warehouse connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// InvalidArgumentError indicates a malformed filter set or a missing
// required parameter. It is raised before any query reaches the backend.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// ConfigurationError indicates a reference to a query that is not in the
// catalog. This is a programming error, not a runtime condition.
type ConfigurationError struct {
	Query QueryName
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown query in catalog: %q", string(e.Query))
}

// QueryExecutionError indicates the backend rejected or failed the SQL.
// The underlying backend message is preserved for the caller; the
// recommended handling is to degrade the one affected panel.
type QueryExecutionError struct {
	Query QueryName
	Err   error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("query %s failed: %v", string(e.Query), e.Err)
}

func (e *QueryExecutionError) Unwrap() error { return e.Err }

// classifyQueryErr wraps a backend error into the taxonomy. Errors the
// server itself reported (SQLSTATE-carrying) are execution failures;
// everything else (dial, TLS, pool closed) is a connection failure.
func classifyQueryErr(name QueryName, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &QueryExecutionError{Query: name, Err: err}
	}
	return &ConnectionError{Err: err}
}
