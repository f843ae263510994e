// Package sql provides stream adapters for database/sql, so query
// results can feed flow pipelines and pipelines can feed statements.
//
// Streams here follow the usual cold contract: nothing touches the
// database until a terminal operation starts the run, and every run
// issues its queries again.
package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avollmer/coldflow/flow/core"
)

// Scanner converts the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query creates a Stream that executes the query on each run and emits
// one value per row. A query, scan, or iteration error terminates the
// stream.
func Query[T any](db *sql.DB, query string, scanner Scanner[T], args ...any) core.Stream[T] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)

			rows, err := db.QueryContext(ctx, query, args...)
			if err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
				return
			}
			defer rows.Close()

			for rows.Next() {
				value, err := scanner(rows)
				if err != nil {
					select {
					case <-ctx.Done():
					case out <- core.Err[T](err):
					}
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(value):
				}
			}

			if err := rows.Err(); err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
			}
		}()
		return out
	})
}

// QueryRow creates a Stream that executes a query expecting a single
// row.
func QueryRow[T any](db *sql.DB, query string, scanner func(*sql.Row) (T, error), args ...any) core.Stream[T] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)

			row := db.QueryRowContext(ctx, query, args...)
			value, err := scanner(row)
			if err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
				return
			}

			select {
			case <-ctx.Done():
			case out <- core.Ok(value):
			}
		}()
		return out
	})
}

// ExecResult holds the outcome of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

// Exec creates a Stream that executes a statement and emits its result.
func Exec(db *sql.DB, query string, args ...any) core.Stream[ExecResult] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[ExecResult] {
		out := make(chan core.Result[ExecResult])
		go func() {
			defer close(out)

			result, err := db.ExecContext(ctx, query, args...)
			if err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[ExecResult](err):
				}
				return
			}

			lastID, _ := result.LastInsertId()
			rowsAffected, _ := result.RowsAffected()
			select {
			case <-ctx.Done():
			case out <- core.Ok(ExecResult{LastInsertId: lastID, RowsAffected: rowsAffected}):
			}
		}()
		return out
	})
}

// ExecMany creates a Transformer that executes the statement once per
// input value. The binder converts each value to query arguments. The
// first exec failure terminates the stream, as does an incoming error.
func ExecMany[T any](db *sql.DB, query string, binder func(T) []any) core.Transformer[T, ExecResult] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[ExecResult] {
		out := make(chan core.Result[ExecResult])
		go func() {
			defer close(out)

			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[ExecResult](res.Error()):
					}
					return
				}

				result, err := db.ExecContext(ctx, query, binder(res.Value())...)
				if err != nil {
					select {
					case <-ctx.Done():
					case out <- core.Err[ExecResult](err):
					}
					return
				}

				lastID, _ := result.LastInsertId()
				rowsAffected, _ := result.RowsAffected()
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(ExecResult{LastInsertId: lastID, RowsAffected: rowsAffected}):
				}
			}
		}()
		return out
	})
}

// Transaction executes fn inside a transaction and emits its value.
// A non-nil error from fn rolls the transaction back and terminates
// the stream; otherwise the transaction is committed.
func Transaction[T any](db *sql.DB, fn func(tx *sql.Tx) (T, error)) core.Stream[T] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)

			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
				return
			}

			value, err := fn(tx)
			if err != nil {
				tx.Rollback()
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
				return
			}

			if err := tx.Commit(); err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
				return
			}

			select {
			case <-ctx.Done():
			case out <- core.Ok(value):
			}
		}()
		return out
	})
}

// QueryStrings queries for rows rendered as string slices, one entry
// per column.
func QueryStrings(db *sql.DB, query string, args ...any) core.Stream[[]string] {
	return Query(db, query, func(rows *sql.Rows) ([]string, error) {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		result := make([]string, len(cols))
		for i, v := range values {
			switch val := v.(type) {
			case nil:
				result[i] = ""
			case []byte:
				result[i] = string(val)
			case string:
				result[i] = val
			case int64:
				result[i] = fmt.Sprintf("%d", val)
			case float64:
				result[i] = fmt.Sprintf("%g", val)
			case bool:
				result[i] = fmt.Sprintf("%t", val)
			default:
				result[i] = fmt.Sprintf("%v", val)
			}
		}
		return result, nil
	}, args...)
}

// QueryMaps queries for rows rendered as maps keyed by column name.
func QueryMaps(db *sql.DB, query string, args ...any) core.Stream[map[string]any] {
	return Query(db, query, func(rows *sql.Rows) (map[string]any, error) {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		result := make(map[string]any, len(cols))
		for i, col := range cols {
			result[col] = values[i]
		}
		return result, nil
	}, args...)
}
