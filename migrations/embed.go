// Package migrations embeds the SQL migration files for the goose
// programmatic API used by the API server and the integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
