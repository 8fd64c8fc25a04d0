// Package migrations embeds the token database schema migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
