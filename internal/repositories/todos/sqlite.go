package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts the todo. Status and completed_date are left to their
// column defaults (pending, NULL).
func (r *SQLiteRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `INSERT INTO todos (user_id, date, title, description, due_time, priority)
	          VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		todo.UserID, todo.Date, todo.Title, todo.Description, todo.DueTime, string(todo.Priority))
	if err != nil {
		return nil, fmt.Errorf("failed to insert todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	todo.ID = id

	return todo, nil
}

// GetByID returns a single todo.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	query := `SELECT id, user_id, date, title, description, status, due_time, completed_date, priority
	            FROM todos WHERE id = ?`

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select todo: %w", err)
	}

	return &t, nil
}

// ListByDate lists one day's todos: high before medium before low, and
// within the same priority the most recently added first.
func (r *SQLiteRepository) ListByDate(ctx context.Context, userID int64, date string) ([]models.Todo, error) {
	query := `SELECT id, user_id, date, title, description, status, due_time, completed_date, priority
	            FROM todos
	           WHERE user_id = ? AND date = ?
	           ORDER BY CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 END,
	                    id DESC`

	return r.queryTodos(ctx, query, userID, date)
}

// ListPendingByPriority lists pending todos across all dates: priority
// rank, then date, then due time, with todos that have no due time after
// those that do.
func (r *SQLiteRepository) ListPendingByPriority(ctx context.Context, userID int64) ([]models.Todo, error) {
	query := `SELECT id, user_id, date, title, description, status, due_time, completed_date, priority
	            FROM todos
	           WHERE user_id = ? AND status = 'pending'
	           ORDER BY CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 END,
	                    date ASC,
	                    CASE WHEN due_time IS NULL THEN 1 ELSE 0 END,
	                    due_time ASC`

	return r.queryTodos(ctx, query, userID)
}

// Search matches keyword as a substring of title or description,
// case-insensitively. Result order is whatever the engine produced.
func (r *SQLiteRepository) Search(ctx context.Context, userID int64, keyword string) ([]models.Todo, error) {
	query := `SELECT id, user_id, date, title, description, status, due_time, completed_date, priority
	            FROM todos
	           WHERE user_id = ? AND (title LIKE ? OR description LIKE ?)`

	pattern := "%" + keyword + "%"
	return r.queryTodos(ctx, query, userID, pattern, pattern)
}

// Update always sets title and description; due_time and priority join the
// SET list only when a value was supplied.
func (r *SQLiteRepository) Update(ctx context.Context, id int64, title, description string, dueTime *string, priority *models.Priority) (bool, error) {
	query := `UPDATE todos SET title = ?, description = ?`
	args := []any{title, description}

	if dueTime != nil {
		query += `, due_time = ?`
		args = append(args, *dueTime)
	}
	if priority != nil {
		query += `, priority = ?`
		args = append(args, string(*priority))
	}

	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update todo: %w", err)
	}
	return rowMatched(res)
}

// Delete removes the todo.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}
	return rowMatched(res)
}

// MarkCompleted completes the todo and stamps completedAt. Calling it again
// simply refreshes the stamp.
func (r *SQLiteRepository) MarkCompleted(ctx context.Context, id int64, completedAt string) (bool, error) {
	query := `UPDATE todos SET status = 'completed', completed_date = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, completedAt, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark todo completed: %w", err)
	}
	return rowMatched(res)
}

// MarkPending reopens the todo and clears the completion stamp.
func (r *SQLiteRepository) MarkPending(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE todos SET status = 'pending', completed_date = NULL WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark todo pending: %w", err)
	}
	return rowMatched(res)
}

// CountByStatus counts the user's todos with the given status.
func (r *SQLiteRepository) CountByStatus(ctx context.Context, userID int64, status models.Status) (int, error) {
	query := `SELECT COUNT(*) FROM todos WHERE user_id = ? AND status = ?`

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count todos by status: %w", err)
	}
	return n, nil
}

// CountOverdue counts pending todos whose date has passed, or whose date is
// today with a due time earlier than now. Pending todos for today without a
// due time are not overdue.
func (r *SQLiteRepository) CountOverdue(ctx context.Context, userID int64, date, now string) (int, error) {
	query := `SELECT COUNT(*) FROM todos
	           WHERE user_id = ? AND status = 'pending'
	             AND (date < ? OR (date = ? AND due_time IS NOT NULL AND due_time < ?))`

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, date, date, now).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count overdue todos: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) queryTodos(ctx context.Context, query string, args ...any) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select todos: %w", err)
	}
	defer rows.Close()

	var result []models.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo reads one row in the canonical column order. Nullable columns
// (description for legacy rows, due_time, completed_date) go through
// sql.NullString.
func scanTodo(row rowScanner) (models.Todo, error) {
	var (
		t         models.Todo
		descr     sql.NullString
		dueTime   sql.NullString
		completed sql.NullString
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.Title, &descr,
		&t.Status, &dueTime, &completed, &t.Priority)
	if err != nil {
		return models.Todo{}, err
	}

	t.Description = descr.String
	if dueTime.Valid {
		t.DueTime = &dueTime.String
	}
	if completed.Valid {
		t.CompletedDate = &completed.String
	}
	return t, nil
}

func rowMatched(res sql.Result) (bool, error) {
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}
