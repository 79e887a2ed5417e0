// Package fortune holds assets that are embedded into the binary.
package fortune

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
