package database

import "embed"

// migrationsFS embeds all SQL migration files into the binary.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS
