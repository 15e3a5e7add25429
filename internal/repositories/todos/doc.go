// Package todos provides the persistence layer for todo items.
//
// # Overview
//
// The package defines a Repository interface for CRUD, query and counting
// operations on Todo models (see internal/models). A SQLite-backed
// implementation (SQLiteRepository) persists data using a dbx.DBTX (either
// *sql.DB or *sql.Tx).
//
// # Data Model
//
// Each todo belongs to a user and carries a date, title, description, an
// optional due time, a priority and a pending/completed status with an
// optional completion timestamp. Dates and times are stored as text in
// fixed layouts that collate chronologically, so the ORDER BY clauses below
// compare them as plain strings.
//
// # Ordering Contracts
//
// ListByDate and ListPendingByPriority guarantee their ordering in SQL;
// Search deliberately guarantees none, leaving presentation order to the
// caller. The single-row mutators (Update, Delete, MarkCompleted,
// MarkPending) report (false, nil) when the id matched nothing.
//
// # Concurrency
//
// Implementations are safe for concurrent use when backed by a properly
// configured *sql.DB. When bound to a *sql.Tx, normal transaction scoping
// rules apply; see dbx.WithTx.
//
// Key Types
//
//   - type Repository        — interface used by higher-level services
//   - type SQLiteRepository  — SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := todos.NewSQLiteRepository(db)
//	created, _ := repo.Create(ctx, todo)
//	day, _ := repo.ListByDate(ctx, userID, "2025-03-15")
//	ok, _ := repo.MarkCompleted(ctx, created.ID, "2025-03-15 14:30:00")
package todos
