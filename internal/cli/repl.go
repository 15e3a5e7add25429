package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// errNotLoggedIn is reported by commands that need an authenticated user.
var errNotLoggedIn = errors.New("not logged in")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Done(ctx context.Context, id string) error
	Undo(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) error
	SetDate(ctx context.Context, date string) error
	Today(ctx context.Context) error
	All(ctx context.Context) error
	Search(ctx context.Context, keyword string) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the TodoKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - list | l         — todos for the selected date
//	  - date <day>       — select another date (YYYY-MM-DD)
//	  - today            — jump back to the current date
//	  - all              — pending todos across dates, by priority
//	  - search <word>    — find todos by title or description
//	  - add              — add a todo on the selected date
//	  - edit <id>        — edit a todo (empty input keeps a value)
//	  - done <id>        — mark completed
//	  - undo <id>        — mark pending again
//	  - del <id>         — delete (asks for confirmation)
//	  - stats            — completion summary
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("todo %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, date <YYYY-MM-DD>, today, all, search <keyword>, add, edit <id>, done <id>, undo <id>, del <id>, stats, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.Done(ctx, args[0])

		case "undo":
			if len(args) == 0 {
				printlnFn("Usage: undo <id>")
				continue
			}
			_ = a.Undo(ctx, args[0])

		case "del":
			if len(args) == 0 {
				printlnFn("Usage: del <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "l", "list":
			_ = a.List(ctx)

		case "date":
			if len(args) == 0 {
				printlnFn("Usage: date <YYYY-MM-DD>")
				continue
			}
			_ = a.SetDate(ctx, args[0])

		case "today":
			_ = a.Today(ctx)

		case "all":
			_ = a.All(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <keyword>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "stats":
			_ = a.Stats(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
