package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Done marks a todo as completed, stamping the completion time.
func (a *App) Done(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	todoID, err := parseID(id)
	if err != nil {
		printlnFn("Invalid id:", id)
		return nil
	}
	ok, err := a.todoService.MarkCompleted(ctx, todoID)
	if err != nil {
		a.log.Error(ctx, "mark completed", "error", err)
		return err
	}
	if !ok {
		printlnFn("no such todo")
		return nil
	}
	printlnFn("Todo marked as completed")
	return a.renderStats(ctx)
}

// Undo marks a completed todo as pending again and clears the stamp.
func (a *App) Undo(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	todoID, err := parseID(id)
	if err != nil {
		printlnFn("Invalid id:", id)
		return nil
	}
	ok, err := a.todoService.MarkPending(ctx, todoID)
	if err != nil {
		a.log.Error(ctx, "mark pending", "error", err)
		return err
	}
	if !ok {
		printlnFn("no such todo")
		return nil
	}
	printlnFn("Todo marked as pending")
	return a.renderStats(ctx)
}

// Delete asks for confirmation and removes a todo for good.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	todoID, err := parseID(id)
	if err != nil {
		printlnFn("Invalid id:", id)
		return nil
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete todo %d? y/N", todoID), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}
	ok, err := a.todoService.Delete(ctx, todoID)
	if err != nil {
		a.log.Error(ctx, "delete todo", "error", err)
		return err
	}
	if !ok {
		printlnFn("no such todo")
		return nil
	}
	printlnFn("Todo deleted")
	return a.renderStats(ctx)
}
