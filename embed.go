// Package curator exposes the SQL migrations embedded into the binary so the
// migrate command can apply them with goose.
package curator

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
