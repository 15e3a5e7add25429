package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/models"
)

// List renders the daily view for the currently selected date.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	items, err := a.todoService.ListByDate(ctx, a.userID, a.selectedDate)
	if err != nil {
		a.log.Error(ctx, "list todos", "error", err)
		return err
	}
	printlnFn(fmt.Sprintf("Todos for %s:", a.selectedDate))
	a.renderTodos(items)
	return nil
}

// SetDate switches the daily view to another date and renders it.
func (a *App) SetDate(ctx context.Context, date string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		printlnFn("Date must be in YYYY-MM-DD format")
		return nil
	}
	a.selectedDate = date
	return a.List(ctx)
}

// Today resets the selected date to the current day and renders it.
func (a *App) Today(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	a.selectedDate = a.today()
	return a.List(ctx)
}

// All renders pending todos across all dates, most urgent first.
func (a *App) All(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	items, err := a.todoService.ListPendingByPriority(ctx, a.userID)
	if err != nil {
		a.log.Error(ctx, "list pending todos", "error", err)
		return err
	}
	printlnFn("Pending todos by priority:")
	a.renderTodos(items)
	return nil
}

// Search renders todos whose title or description contains the keyword.
// The store returns matches unordered; the view shows newest dates first.
func (a *App) Search(ctx context.Context, keyword string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	items, err := a.todoService.Search(ctx, a.userID, keyword)
	if err != nil {
		a.log.Error(ctx, "search todos", "error", err)
		return err
	}
	if len(items) == 0 {
		printlnFn("No todos found matching your search")
		return nil
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date > items[j].Date })
	printlnFn(fmt.Sprintf("Search results for %q:", keyword))
	a.renderTodos(items)
	return nil
}

func (a *App) renderTodos(items []models.Todo) {
	if len(items) == 0 {
		printlnFn("(nothing here)")
		return
	}
	now := a.now()
	for _, t := range items {
		printlnFn(formatTodo(t, now))
	}
}

// formatTodo renders one list row:
//
//	[ ]   3  2025-03-16 09:30  high    Buy milk  2 liters (overdue)
func formatTodo(t models.Todo, now time.Time) string {
	mark := "[ ]"
	if t.Status == models.StatusCompleted {
		mark = "[x]"
	}
	due := "     "
	if t.DueTime != nil {
		due = *t.DueTime
	}
	s := fmt.Sprintf("%s %3d  %s %s  %-7s %s", mark, t.ID, t.Date, due, t.Priority, t.Title)
	if t.Description != "" {
		s += "  " + firstLine(t.Description)
	}
	if t.OverdueAt(now) {
		s += " (overdue)"
	}
	return s
}

// firstLine keeps list rows single-line for multiline descriptions.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
