// Package migrations embeds the SQLite schema of the progression store.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS

const Root = "."
