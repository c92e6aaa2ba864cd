package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/okian/swatch/internal/domain/pantone"
)

const (
	selectColors = `SELECT code, hex, name FROM pantone_colors ORDER BY position`

	createColors = `CREATE TABLE IF NOT EXISTS pantone_colors (
		position INTEGER NOT NULL PRIMARY KEY,
		code     TEXT    NOT NULL,
		hex      TEXT    NOT NULL,
		name     TEXT    NOT NULL
	)`
)

// LoadSQL reads the pantone_colors table through database/sql. driver is
// "sqlite" or "postgres". Rows are returned in position order, which is
// the matcher's tie-break order.
func LoadSQL(ctx context.Context, driver, dsn string) ([]pantone.Color, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrLoadTable, driver, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectColors)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %w", ErrLoadTable, err)
	}
	defer rows.Close()

	var colors []pantone.Color
	for rows.Next() {
		var c pantone.Color
		if err := rows.Scan(&c.Code, &c.Hex, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: scan: %w", ErrLoadTable, err)
		}
		colors = append(colors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %w", ErrLoadTable, err)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%s: %w", driver, pantone.ErrEmptyReferenceTable)
	}
	return colors, nil
}

// WriteSQLite creates (or replaces) the pantone_colors table in the sqlite
// database at path and stores colors in order.
func WriteSQLite(ctx context.Context, path string, colors []pantone.Color) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, createColors); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM pantone_colors`); err != nil {
		return fmt.Errorf("clear table: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO pantone_colors (position, code, hex, name) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range colors {
		if _, err := stmt.ExecContext(ctx, i, c.Code, c.Hex, c.Name); err != nil {
			return fmt.Errorf("insert %s: %w", c.Code, err)
		}
	}
	return tx.Commit()
}
