package storage

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/jmoiron/sqlx"

	// registers the sqlite3 driver used as the default backend
	_ "github.com/mattn/go-sqlite3"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const defaultArtifactTable = "model_artifacts"

// DBAdapter persists artifacts as rows of a database table. Options are a
// mapping with "dsn" (required), "driver" (default sqlite3), "table"
// (default model_artifacts) and "name" entries.
type DBAdapter struct{}

// Keyword implements Adapter
func (DBAdapter) Keyword() string {
	return "db"
}

// Write implements Adapter
func (DBAdapter) Write(artifact interface{}, options interface{}) error {
	opts, ok := options.(map[string]interface{})
	if !ok {
		return fmt.Errorf("db adapter options must be a mapping, got %T", options)
	}

	dsn, err := stringOption(opts, "dsn")
	if err != nil {
		return err
	}

	driver := "sqlite3"
	if d, ok := opts["driver"].(string); ok && d != "" {
		driver = d
	}
	table := defaultArtifactTable
	if tbl, ok := opts["table"].(string); ok && tbl != "" {
		table = tbl
	}
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	var name string
	if n, ok := opts["name"].(string); ok {
		name = n
	}

	var payload bytes.Buffer
	if err := encodeArtifact(&payload, artifact); err != nil {
		return err
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	schema := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (name TEXT, created_at TIMESTAMP, payload BLOB)`, table)
	if _, err := db.Exec(schema); err != nil {
		return err
	}

	insert := fmt.Sprintf(`INSERT INTO %s (name, created_at, payload) VALUES (?, ?, ?)`, table)
	_, err = db.Exec(db.Rebind(insert), name, time.Now().UTC(), payload.Bytes())
	return err
}
