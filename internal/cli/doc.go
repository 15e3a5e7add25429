// Package cli provides the interactive TodoKeeper command-line client.
//
// It wires the auth and todo services into an interactive REPL. Typical
// flow: register or log in, then work with the daily view of the selected
// date, switch dates, or use the cross-date views (all pending by priority,
// keyword search, stats).
//
// Key features:
//   - Register / Login / Logout against the local credential store
//   - Daily view with date selection, plus "all" and "search" views
//   - Add / edit todos with prompts, mark done or pending, delete
//   - Completion stats re-rendered after every mutation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
