package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(call, arg string) {
	f.calls = append(f.calls, call)
	f.args = append(f.args, arg)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register", "")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", "")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", "")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Add(ctx context.Context) error { f.record("add", ""); return nil }
func (f *fakeExec) Edit(ctx context.Context, id string) error {
	f.record("edit", id)
	return nil
}
func (f *fakeExec) Done(ctx context.Context, id string) error {
	f.record("done", id)
	return nil
}
func (f *fakeExec) Undo(ctx context.Context, id string) error {
	f.record("undo", id)
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	f.record("del", id)
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.record("list", ""); return nil }
func (f *fakeExec) SetDate(ctx context.Context, date string) error {
	f.record("date", date)
	return nil
}
func (f *fakeExec) Today(ctx context.Context) error { f.record("today", ""); return nil }
func (f *fakeExec) All(ctx context.Context) error   { f.record("all", ""); return nil }
func (f *fakeExec) Search(ctx context.Context, keyword string) error {
	f.record("search", keyword)
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error { f.record("stats", ""); return nil }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// capturePrintln replaces printlnFn with a recorder and returns the
// collected lines. Each element is one printlnFn call.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"add",
		"list",
		"l",
		"date 2025-03-20",
		"today",
		"all",
		"search buy milk",
		"edit 5",
		"done 3",
		"undo 3",
		"del 3",
		"stats",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantCalls := []string{
		"login", "add", "list", "list", "date", "today", "all",
		"search", "edit", "done", "undo", "del", "stats", "logout",
	}
	if len(exec.calls) != len(wantCalls) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantCalls)
	}
	for i, c := range wantCalls {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], c, exec.calls)
		}
	}

	wantArgs := map[int]string{4: "2025-03-20", 7: "buy milk", 8: "5", 9: "3", 10: "3", 11: "3"}
	for i, want := range wantArgs {
		if exec.args[i] != want {
			t.Fatalf("arg of %q: got %q, want %q", exec.calls[i], exec.args[i], want)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	// команды без обязательного аргумента не должны диспетчеризоваться
	input := strings.NewReader("date\nedit\ndone\nundo\ndel\nsearch\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankAndUnknownLines(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("\n   \nfrobnicate\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*lines, "\n")
	if !strings.Contains(joined, "Unknown command: frobnicate") {
		t.Fatalf("missing unknown-command report:\n%s", joined)
	}
	if !strings.Contains(joined, "Bye!") {
		t.Fatalf("missing farewell:\n%s", joined)
	}
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("help\nlogin\nhelp\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	joined := strings.Join(*lines, "\n")
	if !strings.Contains(joined, "register, login") {
		t.Fatalf("missing logged-out help:\n%s", joined)
	}
	if !strings.Contains(joined, "stats, logout") {
		t.Fatalf("missing logged-in help:\n%s", joined)
	}
}

// Каждая строка ввода диспетчеризуется независимо, состояние между
// командами не протекает.
func TestRunREPL_DispatchProperty(t *testing.T) {
	type dispatchCase struct {
		line     string
		wantCall string
		wantArg  string
	}
	cases := []dispatchCase{
		{"register", "register", ""},
		{"login", "login", ""},
		{"logout", "logout", ""},
		{"add", "add", ""},
		{"list", "list", ""},
		{"l", "list", ""},
		{"today", "today", ""},
		{"all", "all", ""},
		{"stats", "stats", ""},
		{"date 2025-06-01", "date", "2025-06-01"},
		{"edit 12", "edit", "12"},
		{"done 7", "done", "7"},
		{"undo 7", "undo", "7"},
		{"del 7", "del", "7"},
		{"search milk and honey", "search", "milk and honey"},
	}

	silencePrintln(t)

	rapid.Check(t, func(rt *rapid.T) {
		script := rapid.SliceOfN(rapid.SampledFrom(cases), 0, 8).Draw(rt, "script")

		var b strings.Builder
		for _, c := range script {
			b.WriteString(c.line)
			b.WriteString("\n")
		}
		b.WriteString("exit\n")

		exec := &fakeExec{}
		runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader(b.String())))

		if len(exec.calls) != len(script) {
			rt.Fatalf("got %d calls for %d lines: %v", len(exec.calls), len(script), exec.calls)
		}
		for i, c := range script {
			if exec.calls[i] != c.wantCall || exec.args[i] != c.wantArg {
				rt.Fatalf("line %q routed to %q(%q), want %q(%q)",
					c.line, exec.calls[i], exec.args[i], c.wantCall, c.wantArg)
			}
		}
	})
}
