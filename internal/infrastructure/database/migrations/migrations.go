// Package migrations embeds the SQL schema so a fresh binary can bring its
// own database up to date.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
