// Package migrations embeds the client session cache schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
