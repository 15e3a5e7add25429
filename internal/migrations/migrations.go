// Package migrations embeds the versioned schema migrations that
// storage.Open applies through goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
