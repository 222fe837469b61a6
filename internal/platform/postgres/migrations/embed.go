// Package migrations embeds the goose SQL migrations for the zoo schema.
package migrations

import "embed"

// FS holds every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS

// Dir is the root of FS as goose expects it.
const Dir = "."
