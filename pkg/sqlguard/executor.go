package sqlguard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"catalog-chat-be/internal/apperror"

	"gorm.io/gorm"
)

// QueryResult holds the output of an executed statement in a shape that is
// easy to serialize for both the API response and the answer prompt.
type QueryResult struct {
	Columns   []string        `json:"columns"`
	Rows      [][]interface{} `json:"rows"`
	RowCount  int             `json:"row_count"`
	Truncated bool            `json:"truncated,omitempty"`
}

// JSON serializes the result for persistence on the assistant message.
func (r *QueryResult) JSON() string {
	if r == nil {
		return ""
	}
	data, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(data)
}

// Executor runs validated statements against the sample data store under a
// deadline and a row cap.
type Executor struct {
	db            *gorm.DB
	allowedTables []string
	timeout       time.Duration
	maxRows       int
}

func NewExecutor(db *gorm.DB, tables []TableSpec, timeout time.Duration, maxRows int) *Executor {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if maxRows <= 0 {
		maxRows = 100
	}
	return &Executor{
		db:            db,
		allowedTables: AllowedTableNames(tables),
		timeout:       timeout,
		maxRows:       maxRows,
	}
}

func (e *Executor) AllowedTables() []string {
	return e.allowedTables
}

// Execute validates and runs a candidate statement. On a row-cap hit the
// truncated result is returned together with a QueryTooLargeError so the
// caller can surface both.
func (e *Executor) Execute(ctx context.Context, sqlText string) (*QueryResult, error) {
	if err := Validate(sqlText, e.allowedTables); err != nil {
		return nil, err
	}

	queryCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	rows, err := e.db.WithContext(queryCtx).Raw(sqlText).Rows()
	if err != nil {
		return nil, wrapExecError(queryCtx, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, wrapExecError(queryCtx, err)
	}

	result := &QueryResult{Columns: columns, Rows: make([][]interface{}, 0)}
	for rows.Next() {
		if result.RowCount >= e.maxRows {
			result.Truncated = true
			return result, &apperror.QueryTooLargeError{RowLimit: e.maxRows}
		}

		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, wrapExecError(queryCtx, err)
		}

		row := make([]interface{}, len(columns))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			} else {
				row[i] = v
			}
		}
		result.Rows = append(result.Rows, row)
		result.RowCount++
	}
	if err := rows.Err(); err != nil {
		return nil, wrapExecError(queryCtx, err)
	}

	return result, nil
}

func wrapExecError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &apperror.QueryTimeoutError{Err: err}
	}
	return err
}
