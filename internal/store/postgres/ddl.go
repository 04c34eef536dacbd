package postgres

import (
	"database/sql"
	_ "embed"
	"strings"
)

//go:embed schema.sql
var ddlFile string

// EnsureSchema applies the embedded DDL. All statements are idempotent
// (IF NOT EXISTS), so this is safe to run on every startup.
func EnsureSchema(db *sql.DB) error {
	for _, p := range strings.Split(ddlFile, ";") {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
