// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	// DuckDB driver - reads CSV, Parquet and JSON tables in-process
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/antonk-nf/algopath2-sub001/internal/logging"
	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// Format is the on-disk format of a table file.
type Format string

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = "auto"
	// FormatCSV is comma (or auto-detected delimiter) separated text.
	FormatCSV Format = "csv"
	// FormatParquet is Apache Parquet.
	FormatParquet Format = "parquet"
	// FormatJSON is a JSON array or newline-delimited JSON.
	FormatJSON Format = "json"
)

// DefaultQueryTimeout bounds a single table read when the caller's context
// carries no deadline.
const DefaultQueryTimeout = 2 * time.Minute

// requiredColumns must be present in every table.
var requiredColumns = []string{
	"title",
	"difficulty",
	"likes",
	"dislikes",
	"acceptance_rate",
	"has_solution",
	"has_video_solution",
	"is_paid_only",
}

// ParseFormat parses a format name. An empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "csv", "tsv":
		return FormatCSV, nil
	case "parquet":
		return FormatParquet, nil
	case "json", "jsonl", "ndjson":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported source format %q", s)
	}
}

// DetectFormat returns the format implied by a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV, nil
	case ".parquet", ".pq":
		return FormatParquet, nil
	case ".json", ".jsonl", ".ndjson":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot detect format of %q", path)
	}
}

// FileSource reads the problem table from a local file with an in-memory
// DuckDB connection.
type FileSource struct {
	Path   string
	Format Format
}

// NewFileSource creates a file source. The format is resolved eagerly so a
// bad configuration fails at startup rather than on first load.
func NewFileSource(path string, format Format) (*FileSource, error) {
	if path == "" {
		return nil, errors.New("source path is required")
	}
	if format == "" || format == FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	return &FileSource{Path: path, Format: format}, nil
}

// String implements Source.
func (f *FileSource) String() string {
	return fmt.Sprintf("%s:%s", f.Format, f.Path)
}

// ModTime returns the modification time of the backing file.
func (f *FileSource) ModTime() (time.Time, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return info.ModTime(), nil
}

// Load reads every row of the table. Every failure wraps ErrUnavailable.
func (f *FileSource) Load(ctx context.Context) ([]quality.Problem, error) {
	if _, err := os.Stat(f.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultQueryTimeout)
		defer cancel()
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("%w: open duckdb: %w", ErrUnavailable, err)
	}
	defer db.Close() //nolint:errcheck // in-memory connection, nothing to flush

	scan, err := f.scanExpr()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	columns, err := describe(ctx, db, scan)
	if err != nil {
		return nil, fmt.Errorf("%w: describe %s: %w", ErrUnavailable, f.Path, err)
	}
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q in %s", ErrUnavailable, col, f.Path)
		}
	}

	query := buildSelect(scan, columns)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", ErrUnavailable, f.Path, err)
	}
	defer rows.Close() //nolint:errcheck // read-only result set

	var out []quality.Problem
	for rows.Next() {
		var (
			p       quality.Problem
			diff    string
			tags    sql.NullString
			content sql.NullString
		)
		if err := rows.Scan(
			&p.Title,
			&diff,
			&p.Likes,
			&p.Dislikes,
			&p.AcceptanceRate,
			&p.HasSolution,
			&p.HasVideoSolution,
			&p.IsPaidOnly,
			&content,
			&tags,
		); err != nil {
			return nil, fmt.Errorf("%w: scan row: %w", ErrUnavailable, err)
		}
		p.Difficulty = quality.Difficulty(diff)
		if content.Valid {
			p.Content = content.String
		}
		if tags.Valid {
			p.TopicTags = SplitTopicTags(tags.String)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %w", ErrUnavailable, err)
	}

	logging.Debug().
		Str("path", f.Path).
		Str("format", string(f.Format)).
		Int("rows", len(out)).
		Msg("Read problem table")

	return out, nil
}

// scanExpr returns the DuckDB table function reading the file.
func (f *FileSource) scanExpr() (string, error) {
	lit := quoteLiteral(f.Path)
	switch f.Format {
	case FormatCSV:
		return fmt.Sprintf("read_csv_auto(%s, header = true)", lit), nil
	case FormatParquet:
		return fmt.Sprintf("read_parquet(%s)", lit), nil
	case FormatJSON:
		return fmt.Sprintf("read_json_auto(%s)", lit), nil
	default:
		return "", fmt.Errorf("unsupported source format %q", f.Format)
	}
}

// describe returns lower-cased column names mapped to their DuckDB types.
func describe(ctx context.Context, db *sql.DB, scan string) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, "DESCRIBE SELECT * FROM "+scan)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck // read-only result set

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	columns := make(map[string]string)
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		if len(values) < 2 {
			continue
		}
		columns[strings.ToLower(values[0].String)] = strings.ToUpper(values[1].String)
	}
	return columns, rows.Err()
}

// buildSelect projects the source columns onto the fixed scan order. Counts
// are clamped at zero and unparsable values fall back to zero or false.
func buildSelect(scan string, columns map[string]string) string {
	content := "NULL::VARCHAR"
	if _, ok := columns["content"]; ok {
		content = "CAST(content AS VARCHAR)"
	}

	tags := "NULL::VARCHAR"
	if typ, ok := columns["topic_tags"]; ok {
		if strings.HasSuffix(typ, "[]") {
			tags = "array_to_string(topic_tags, ',')"
		} else {
			tags = "CAST(topic_tags AS VARCHAR)"
		}
	}

	return fmt.Sprintf(`SELECT
	TRIM(CAST(title AS VARCHAR)),
	TRIM(COALESCE(CAST(difficulty AS VARCHAR), '')),
	GREATEST(COALESCE(TRY_CAST(likes AS BIGINT), 0), 0),
	GREATEST(COALESCE(TRY_CAST(dislikes AS BIGINT), 0), 0),
	COALESCE(TRY_CAST(acceptance_rate AS DOUBLE), 0),
	COALESCE(TRY_CAST(has_solution AS BOOLEAN), false),
	COALESCE(TRY_CAST(has_video_solution AS BOOLEAN), false),
	COALESCE(TRY_CAST(is_paid_only AS BOOLEAN), false),
	%s,
	%s
FROM %s
WHERE title IS NOT NULL`, content, tags, scan)
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
