// Package db embeds the SQL migrations of the Postgres result store.
package db

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.up.sql
var migrations embed.FS

// UpStatements returns the statements of every up migration, files in name
// order.
func UpStatements() ([]string, error) {
	files, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	var stmts []string
	for _, f := range files {
		content, err := migrations.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", f, err)
		}
		for _, stmt := range strings.Split(string(content), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
	}
	return stmts, nil
}

// UpScript joins UpStatements into one script.
func UpScript() (string, error) {
	stmts, err := UpStatements()
	if err != nil {
		return "", err
	}
	return strings.Join(stmts, ";\n\n") + ";\n", nil
}
