package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/models"
	"github.com/dmitrijs2005/todokeeper/internal/repositories/todos"
)

// TodoService defines todo operations for the CLI.
//
// Contract:
//   - Add re-validates input even though the view checks it first; the
//     store's invariants do not depend on the view being well behaved.
//   - Single-row mutators return (false, nil) when the id matched nothing.
//   - Search returns matches in no particular order; presentation ordering
//     belongs to the caller.
//   - Stats counts come from one transaction, so the three numbers always
//     describe the same snapshot.
type TodoService interface {
	Add(ctx context.Context, userID int64, date, title, description string, dueTime *string, priority models.Priority) (int64, error)
	GetByID(ctx context.Context, todoID int64) (*models.Todo, error)
	ListByDate(ctx context.Context, userID int64, date string) ([]models.Todo, error)
	ListPendingByPriority(ctx context.Context, userID int64) ([]models.Todo, error)
	Search(ctx context.Context, userID int64, keyword string) ([]models.Todo, error)
	Update(ctx context.Context, todoID int64, title, description string, dueTime *string, priority *models.Priority) (bool, error)
	Delete(ctx context.Context, todoID int64) (bool, error)
	MarkCompleted(ctx context.Context, todoID int64) (bool, error)
	MarkPending(ctx context.Context, todoID int64) (bool, error)
	Stats(ctx context.Context, userID int64) (models.Stats, error)
}

// todoService is the concrete TodoService. The clock is a field so tests
// can pin completion stamps and the overdue boundary.
type todoService struct {
	db  *sql.DB
	now func() time.Time
}

// NewTodoService constructs a TodoService bound to the given DB.
func NewTodoService(db *sql.DB) TodoService {
	return &todoService{db: db, now: time.Now}
}

func (s *todoService) getTodoRepo() todos.Repository {
	return todos.NewSQLiteRepository(s.db)
}

// Add stores a new pending todo after re-validating every field.
func (s *todoService) Add(ctx context.Context, userID int64, date, title, description string, dueTime *string, priority models.Priority) (int64, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return 0, fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if err := validateDate(date); err != nil {
		return 0, err
	}
	if err := validateDueTime(dueTime); err != nil {
		return 0, err
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return 0, fmt.Errorf("%w: unknown priority %q", common.ErrValidation, priority)
	}

	todo := &models.Todo{
		UserID:      userID,
		Date:        date,
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
		DueTime:     dueTime,
		Priority:    priority,
	}

	created, err := s.getTodoRepo().Create(ctx, todo)
	if err != nil {
		return 0, fmt.Errorf("failed to add todo: %w", err)
	}
	return created.ID, nil
}

// GetByID loads one todo, e.g. to prefill the edit flow.
func (s *todoService) GetByID(ctx context.Context, todoID int64) (*models.Todo, error) {
	return s.getTodoRepo().GetByID(ctx, todoID)
}

// ListByDate returns one day's todos in the daily-view order.
func (s *todoService) ListByDate(ctx context.Context, userID int64, date string) ([]models.Todo, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.getTodoRepo().ListByDate(ctx, userID, date)
}

// ListPendingByPriority returns pending todos across all dates in the
// priority-view order.
func (s *todoService) ListPendingByPriority(ctx context.Context, userID int64) ([]models.Todo, error) {
	return s.getTodoRepo().ListPendingByPriority(ctx, userID)
}

// Search returns the user's todos matching keyword, unordered.
func (s *todoService) Search(ctx context.Context, userID int64, keyword string) ([]models.Todo, error) {
	return s.getTodoRepo().Search(ctx, userID, keyword)
}

// Update rewrites title and description and, when supplied, due time and
// priority. The date and owner of a todo never change.
func (s *todoService) Update(ctx context.Context, todoID int64, title, description string, dueTime *string, priority *models.Priority) (bool, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return false, fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if err := validateDueTime(dueTime); err != nil {
		return false, err
	}
	if priority != nil && !priority.Valid() {
		return false, fmt.Errorf("%w: unknown priority %q", common.ErrValidation, *priority)
	}

	ok, err := s.getTodoRepo().Update(ctx, todoID, title, description, dueTime, priority)
	if err != nil {
		return false, fmt.Errorf("failed to update todo: %w", err)
	}
	return ok, nil
}

// Delete removes a todo permanently.
func (s *todoService) Delete(ctx context.Context, todoID int64) (bool, error) {
	ok, err := s.getTodoRepo().Delete(ctx, todoID)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}
	return ok, nil
}

// MarkCompleted completes a todo, stamping the current clock time.
// Completing an already-completed todo refreshes the stamp.
func (s *todoService) MarkCompleted(ctx context.Context, todoID int64) (bool, error) {
	stamp := s.now().Format(models.TimestampLayout)

	ok, err := s.getTodoRepo().MarkCompleted(ctx, todoID, stamp)
	if err != nil {
		return false, fmt.Errorf("failed to mark todo completed: %w", err)
	}
	return ok, nil
}

// MarkPending reopens a todo and clears its completion stamp.
func (s *todoService) MarkPending(ctx context.Context, todoID int64) (bool, error) {
	ok, err := s.getTodoRepo().MarkPending(ctx, todoID)
	if err != nil {
		return false, fmt.Errorf("failed to mark todo pending: %w", err)
	}
	return ok, nil
}

// Stats returns completed/pending/overdue counts evaluated at the current
// clock time inside a single transaction.
func (s *todoService) Stats(ctx context.Context, userID int64) (models.Stats, error) {
	now := s.now()

	var stats models.Stats
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := todos.NewSQLiteRepository(tx)

		completed, err := repo.CountByStatus(ctx, userID, models.StatusCompleted)
		if err != nil {
			return err
		}
		pending, err := repo.CountByStatus(ctx, userID, models.StatusPending)
		if err != nil {
			return err
		}
		overdue, err := repo.CountOverdue(ctx, userID,
			now.Format(models.DateLayout), now.Format(models.TimeLayout))
		if err != nil {
			return err
		}

		stats = models.Stats{Completed: completed, Pending: pending, Overdue: overdue}
		return nil
	})
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to collect stats: %w", err)
	}
	return stats, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", common.ErrValidation)
	}
	return nil
}

// Due times are stored and compared as text, so only the canonical
// zero-padded form is accepted. time.Parse alone would let "9:30" through.
func validateDueTime(dueTime *string) error {
	if dueTime == nil {
		return nil
	}
	t, err := time.Parse(models.TimeLayout, *dueTime)
	if err != nil || t.Format(models.TimeLayout) != *dueTime {
		return fmt.Errorf("%w: due time must be in HH:MM format", common.ErrValidation)
	}
	return nil
}
