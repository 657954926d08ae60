// Package migrations embeds the goose SQL migrations for the score database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
