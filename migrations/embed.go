package migrations

import "embed"

// FS holds the SQL migration files compiled into the binary, so the
// server can bring a fresh database up to date without shipping the
// migrations directory alongside it.
//
//go:embed *.sql
var FS embed.FS
