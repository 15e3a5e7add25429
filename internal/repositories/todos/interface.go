package todos

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/models"
)

// Repository describes persistence operations for todos. Mutators that
// target a single row by id report (false, nil) when no row matched, so
// callers can distinguish "nothing there" from a storage failure.
type Repository interface {
	// Create inserts a new todo and returns it with ID populated. New rows
	// start pending with no completion timestamp.
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)

	// GetByID returns a todo by its identifier, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Todo, error)

	// ListByDate returns the user's todos for one date, highest priority
	// first and newest first within a priority.
	ListByDate(ctx context.Context, userID int64, date string) ([]models.Todo, error)

	// ListPendingByPriority returns the user's pending todos across all
	// dates, ordered by priority, then date, then due time with untimed
	// todos after timed ones.
	ListPendingByPriority(ctx context.Context, userID int64) ([]models.Todo, error)

	// Search returns the user's todos whose title or description contains
	// keyword, in no particular order. Presentation ordering is the
	// caller's job.
	Search(ctx context.Context, userID int64, keyword string) ([]models.Todo, error)

	// Update sets title and description, and due time and priority only
	// when non-nil. Date and owner are never altered.
	Update(ctx context.Context, id int64, title, description string, dueTime *string, priority *models.Priority) (bool, error)

	// Delete removes the todo permanently.
	Delete(ctx context.Context, id int64) (bool, error)

	// MarkCompleted sets the status to completed and stamps completedAt,
	// overwriting any earlier stamp.
	MarkCompleted(ctx context.Context, id int64, completedAt string) (bool, error)

	// MarkPending sets the status back to pending and clears the
	// completion timestamp.
	MarkPending(ctx context.Context, id int64) (bool, error)

	// CountByStatus returns how many of the user's todos have the status.
	CountByStatus(ctx context.Context, userID int64, status models.Status) (int, error)

	// CountOverdue returns how many of the user's pending todos are
	// overdue as of the given date and clock time.
	CountOverdue(ctx context.Context, userID int64, date, now string) (int, error)
}
