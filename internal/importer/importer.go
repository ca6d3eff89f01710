package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// execer is the slice of the pgx pool the importer needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// fileTables maps seed files to target tables, in dependency order so
// foreign keys resolve.
var fileTables = []struct {
	File  string
	Table string
}{
	{"users.csv", "users"},
	{"category.csv", "categories"},
	{"genre.csv", "genres"},
	{"titles.csv", "titles"},
	{"genre_title.csv", "genre_titles"},
	{"review.csv", "reviews"},
	{"comments.csv", "comments"},
}

// columnAliases renames legacy seed headers to the schema's column names.
var columnAliases = map[string]string{
	"category": "category_id",
	"author":   "author_id",
}

// Summary reports what a run did per file.
type Summary struct {
	Files []FileResult
}

type FileResult struct {
	File      string
	Table     string
	Skipped   bool
	Attempted int
	Succeeded int
	Failed    int
}

type Importer struct {
	db  execer
	log *zap.Logger
}

func NewImporter(db execer, log *zap.Logger) *Importer {
	return &Importer{
		db:  db,
		log: log.With(zap.String("component", "importer")),
	}
}

// Run loads every known seed file found under dir. Missing files are
// skipped, and a row that fails to insert never stops the rest of the
// file.
func (i *Importer) Run(ctx context.Context, dir string) (*Summary, error) {
	summary := &Summary{}

	for _, ft := range fileTables {
		result, err := i.importFile(ctx, filepath.Join(dir, ft.File), ft.Table)
		if err != nil {
			return summary, fmt.Errorf("import %s: %w", ft.File, err)
		}

		result.File = ft.File
		result.Table = ft.Table
		summary.Files = append(summary.Files, *result)

		if result.Skipped {
			i.log.Warn("Seed file not found, skipping", zap.String("file", ft.File))
			continue
		}

		i.log.Info("Seed file imported",
			zap.String("file", ft.File),
			zap.Int("attempted", result.Attempted),
			zap.Int("succeeded", result.Succeeded),
			zap.Int("failed", result.Failed))
	}

	return summary, nil
}

func (i *Importer) importFile(ctx context.Context, path, table string) (*FileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileResult{Skipped: true}, nil
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(name)
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		columns[idx] = name
	}

	query := buildInsert(table, columns)
	result := &FileResult{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Attempted++
			result.Failed++
			i.log.Warn("Malformed row",
				zap.String("table", table),
				zap.Int("row", result.Attempted),
				zap.Error(err))
			continue
		}

		result.Attempted++

		args := make([]any, len(record))
		for idx, value := range record {
			if value == "" {
				args[idx] = nil
				continue
			}
			args[idx] = value
		}

		if _, err := i.db.Exec(ctx, query, args...); err != nil {
			result.Failed++
			i.log.Warn("Row rejected",
				zap.String("table", table),
				zap.Int("row", result.Attempted),
				zap.Error(err))
			continue
		}

		result.Succeeded++
	}

	return result, nil
}

func buildInsert(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for idx := range columns {
		placeholders[idx] = fmt.Sprintf("$%d", idx+1)
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
}
