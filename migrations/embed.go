// Package migrations embeds the schema so binaries and e2e tests apply the same SQL.
package migrations

import "embed"

// FS also carries atlas.sum so `resqctl migrate --engine atlas` can hand the directory to the atlas CLI unchanged.
//
//go:embed *.sql atlas.sum
var FS embed.FS

// Files lists migrations in apply order.
var Files = []string{
	"001_initial_schema.sql",
	"002_idempotency_keys.sql",
}
