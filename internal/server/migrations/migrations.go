// Package migrations embeds the goose migrations for both supported
// backends. The two trees describe the same schema.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed sqlite/*.sql
var SQLite embed.FS
