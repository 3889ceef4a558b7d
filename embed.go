package embedded

import "embed"

//go:embed "migrations"
var RecordMigrations embed.FS
