package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/models"
)

// validTime reports whether s is a canonical zero-padded HH:MM string.
// time.Parse alone is too lenient about the hour.
func validTime(s string) bool {
	t, err := time.Parse(models.TimeLayout, s)
	return err == nil && t.Format(models.TimeLayout) == s
}

// Add prompts for the fields of a new todo and stores it on the currently
// selected date.
//
// Form rules carried from the desktop app: the title is required, the due
// time must be HH:MM, past dates are refused, and a due time already gone
// today is refused. The priority defaults to medium when the prompt is left
// empty.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	today := a.today()
	if a.selectedDate < today {
		printlnFn("Cannot add todos for past dates")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Title is required")
		return nil
	}

	description, err := GetMultiline(a.reader, "Enter description (optional):", os.Stdout)
	if err != nil {
		return err
	}

	dueStr, err := getSimpleText(a.reader, "Enter due time HH:MM (optional)", os.Stdout)
	if err != nil {
		return err
	}
	var dueTime *string
	if dueStr != "" {
		if !validTime(dueStr) {
			printlnFn("Due time must be in HH:MM format")
			return nil
		}
		if a.selectedDate == today && dueStr < a.now().Format(models.TimeLayout) {
			printlnFn("Cannot add todos with past time")
			return nil
		}
		dueTime = &dueStr
	}

	prioStr, err := getSimpleText(a.reader, "Enter priority low/medium/high (default medium)", os.Stdout)
	if err != nil {
		return err
	}
	priority := models.Priority(prioStr)
	if prioStr == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		printlnFn("Priority must be low, medium or high")
		return nil
	}

	id, err := a.todoService.Add(ctx, a.userID, a.selectedDate, title, description, dueTime, priority)
	if err != nil {
		a.log.Error(ctx, "add todo", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Todo %d added", id))
	return a.List(ctx)
}

// Edit loads a todo, prompts for each field with the current value shown,
// and applies the update. Pressing Enter keeps the current value, so a due
// time can be changed but not cleared, same as the desktop form.
func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	todoID, err := parseID(id)
	if err != nil {
		printlnFn("Invalid id:", id)
		return nil
	}

	todo, err := a.todoService.GetByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("no such todo")
			return nil
		}
		a.log.Error(ctx, "load todo", "error", err)
		return err
	}
	// ids are typed free-form here, so do not show rows of other accounts
	if todo.UserID != a.userID {
		printlnFn("no such todo")
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", todo.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		title = todo.Title
	}

	description, err := GetMultiline(a.reader, fmt.Sprintf("Description [%s]:", firstLine(todo.Description)), os.Stdout)
	if err != nil {
		return err
	}
	if description == "" {
		description = todo.Description
	}

	current := ""
	if todo.DueTime != nil {
		current = *todo.DueTime
	}
	dueStr, err := getSimpleText(a.reader, fmt.Sprintf("Due time HH:MM [%s]", current), os.Stdout)
	if err != nil {
		return err
	}
	var dueTime *string
	if dueStr != "" {
		if !validTime(dueStr) {
			printlnFn("Due time must be in HH:MM format")
			return nil
		}
		dueTime = &dueStr
	}

	prioStr, err := getSimpleText(a.reader, fmt.Sprintf("Priority low/medium/high [%s]", todo.Priority), os.Stdout)
	if err != nil {
		return err
	}
	var priority *models.Priority
	if prioStr != "" {
		p := models.Priority(prioStr)
		if !p.Valid() {
			printlnFn("Priority must be low, medium or high")
			return nil
		}
		priority = &p
	}

	ok, err := a.todoService.Update(ctx, todoID, title, description, dueTime, priority)
	if err != nil {
		a.log.Error(ctx, "update todo", "error", err)
		return err
	}
	if !ok {
		printlnFn("no such todo")
		return nil
	}

	printlnFn("Todo updated")
	return a.List(ctx)
}
