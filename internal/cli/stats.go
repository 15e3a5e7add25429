package cli

import (
	"context"
	"fmt"
)

// Stats renders the completion summary for the current user.
func (a *App) Stats(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	return a.renderStats(ctx)
}

// renderStats prints a one-line summary. Mutating commands call it too, the
// way the desktop app refreshed its stats bar after every change.
func (a *App) renderStats(ctx context.Context) error {
	st, err := a.todoService.Stats(ctx, a.userID)
	if err != nil {
		a.log.Error(ctx, "load stats", "error", err)
		return err
	}
	printlnFn(fmt.Sprintf("Total: %d | Completed: %d | Pending: %d | Overdue: %d",
		st.Total(), st.Completed, st.Pending, st.Overdue))
	return nil
}
