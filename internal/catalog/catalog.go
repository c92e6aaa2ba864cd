// Package catalog loads Pantone reference tables from the built-in set,
// YAML/JSON files or a SQL database.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/swatch/internal/domain/pantone"
)

// Table source kinds.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Source selects where a reference table comes from.
type Source struct {
	Kind string
	Path string // table file path
	DSN  string // sqlite or postgres DSN
}

// Load reads the table described by src. The builtin source never fails.
func Load(ctx context.Context, src Source) ([]pantone.Color, error) {
	switch strings.ToLower(strings.TrimSpace(src.Kind)) {
	case "", SourceBuiltin:
		return pantone.DefaultTable(), nil
	case SourceFile:
		return LoadFile(ctx, src.Path)
	case SourceSQLite:
		dsn := src.DSN
		if dsn == "" {
			dsn = src.Path
		}
		return LoadSQL(ctx, "sqlite", dsn)
	case SourcePostgres:
		return LoadSQL(ctx, "postgres", src.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src.Kind)
	}
}

// LoadFile reads a table from a YAML (or JSON) document of the form
//
//	colors:
//	  - {code: "186 C", hex: "#C8102E", name: "True Red"}
func LoadFile(_ context.Context, path string) ([]pantone.Color, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadTable, path, err)
	}

	var colors []pantone.Color
	if err := k.UnmarshalWithConf("colors", &colors, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadTable, path, err)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%s: %w", path, pantone.ErrEmptyReferenceTable)
	}
	return colors, nil
}
