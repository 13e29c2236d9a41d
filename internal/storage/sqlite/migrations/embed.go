package migrations

import "embed"

// FS contains the embedded SQLite migrations for the court store.
//
//go:embed *.sql
var FS embed.FS
