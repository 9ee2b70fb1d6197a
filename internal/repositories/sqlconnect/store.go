package sqlconnect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"pocketledger/pkg/utils"
)

var (
	// ErrStoreUnavailable means no connection could be taken from the pool.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrQueryFailed covers constraint violations, bad parameter types and
	// any other error reported by the server for a statement.
	ErrQueryFailed = errors.New("query failed")
)

// Store runs one parameterized statement per call against the shared pool.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// withConn holds a pooled connection for the duration of fn and always
// returns it to the pool.
func (s *Store) withConn(ctx context.Context, op, query string, fn func(*sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return utils.ErrorHandler(fmt.Errorf("%w: %w", ErrStoreUnavailable, err), "unable to get connection from pool", logrus.Fields{
			"operation": op,
		})
	}
	defer conn.Close()

	if err := fn(conn); err != nil {
		return utils.ErrorHandler(fmt.Errorf("%w: %w", ErrQueryFailed, err), "unable to query", logrus.Fields{
			"operation": op,
			"query":     query,
		})
	}
	return nil
}

func (s *Store) exec(ctx context.Context, op, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := s.withConn(ctx, op, query, func(conn *sql.Conn) error {
		var err error
		res, err = conn.ExecContext(ctx, query, args...)
		return err
	})
	return res, err
}

// insert runs an INSERT and returns the generated id.
func (s *Store) insert(ctx context.Context, op, query string, args ...any) (int, error) {
	var id int64
	err := s.withConn(ctx, op, query, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return int(id), err
}

// update runs an UPDATE and reports whether a row matched.
func (s *Store) update(ctx context.Context, op, query string, args ...any) (bool, error) {
	var matched int64
	err := s.withConn(ctx, op, query, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		matched, err = res.RowsAffected()
		return err
	})
	return matched > 0, err
}

// queryOne returns nil, nil when no row matches.
func queryOne[T any](ctx context.Context, s *Store, op, query string, scan func(rowScanner) (*T, error), args ...any) (*T, error) {
	var out *T
	err := s.withConn(ctx, op, query, func(conn *sql.Conn) error {
		row, err := scan(conn.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// queryAll never returns a nil slice on success.
func queryAll[T any](ctx context.Context, s *Store, op, query string, scan func(rowScanner) (*T, error), args ...any) ([]T, error) {
	out := []T{}
	err := s.withConn(ctx, op, query, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return err
			}
			out = append(out, *item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
