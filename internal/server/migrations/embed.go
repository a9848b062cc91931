// Package migrations embeds the goose schema migrations, one directory per
// dialect ("postgres", "sqlite").
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
