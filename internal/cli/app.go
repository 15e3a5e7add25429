package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/config"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/models"
	"github.com/dmitrijs2005/todokeeper/internal/services"
)

// App holds everything the REPL remembers between commands: the
// authenticated user, the currently selected date and the input reader.
// The services themselves stay stateless.
type App struct {
	config      *config.Config
	authService services.AuthService
	todoService services.TodoService
	log         logging.Logger

	userID       int64
	userName     string
	selectedDate string

	reader *bufio.Reader
	now    func() time.Time
}

// NewApp wires an App over already-constructed services. The database
// lifecycle stays with the caller.
func NewApp(cfg *config.Config, auth services.AuthService, todos services.TodoService, log logging.Logger) *App {
	return &App{
		config:      cfg,
		authService: auth,
		todoService: todos,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		now:         time.Now,
	}
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("TodoKeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.userID != 0
}

// getStatus renders the prompt decoration, e.g. "(alice 2025-03-15)".
func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.userName, a.selectedDate)
}

func (a *App) today() string {
	return a.now().Format(models.DateLayout)
}

// requireLogin prints a hint and reports an error when no user is
// authenticated. Command handlers call it first.
func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return errNotLoggedIn
	}
	return nil
}
