// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

func TestSplitTopicTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"comma", "Array, Hash Table", []string{"Array", "Hash Table"}},
		{"semicolon", "Graph;BFS", []string{"Graph", "BFS"}},
		{"pipe", "Tree|DFS| ", []string{"Tree", "DFS"}},
		{"mixed", "a,b;c|d", []string{"a", "b", "c", "d"}},
		{"empty", "", nil},
		{"only delimiters", " , ;|", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTopicTags(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTopicTags(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"data/problems.csv", FormatCSV, false},
		{"problems.PARQUET", FormatParquet, false},
		{"problems.jsonl", FormatJSON, false},
		{"problems.xlsx", "", true},
	}

	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("DetectFormat(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	if f, err := ParseFormat(""); err != nil || f != FormatAuto {
		t.Errorf("ParseFormat(\"\") = %q, %v", f, err)
	}
	if f, err := ParseFormat("NDJSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(NDJSON) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestNewFileSource(t *testing.T) {
	t.Parallel()

	if _, err := NewFileSource("", FormatAuto); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := NewFileSource("problems.unknown", FormatAuto); err == nil {
		t.Error("expected error for undetectable format")
	}
	src, err := NewFileSource("problems.unknown", FormatCSV)
	if err != nil {
		t.Fatalf("explicit format: %v", err)
	}
	if src.Format != FormatCSV {
		t.Errorf("Format = %q, want csv", src.Format)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	t.Parallel()

	src, err := NewFileSource(filepath.Join(t.TempDir(), "missing.csv"), FormatAuto)
	if err != nil {
		t.Fatalf("NewFileSource: %v", err)
	}
	_, err = src.Load(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if _, err := src.ModTime(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ModTime: expected ErrUnavailable, got %v", err)
	}
}

func TestQuoteLiteral(t *testing.T) {
	t.Parallel()

	if got := quoteLiteral("/tmp/o'brien.csv"); got != "'/tmp/o''brien.csv'" {
		t.Errorf("quoteLiteral = %s", got)
	}
}

func TestBuildSelect_OptionalColumns(t *testing.T) {
	t.Parallel()

	without := buildSelect("read_csv_auto('x.csv')", map[string]string{"title": "VARCHAR"})
	if strings.Count(without, "NULL::VARCHAR") != 2 {
		t.Errorf("expected both optional columns to default to NULL:\n%s", without)
	}

	withList := buildSelect("read_parquet('x.parquet')", map[string]string{
		"content":    "VARCHAR",
		"topic_tags": "VARCHAR[]",
	})
	if !strings.Contains(withList, "array_to_string(topic_tags, ',')") {
		t.Errorf("expected list tags to be joined:\n%s", withList)
	}
	if !strings.Contains(withList, "CAST(content AS VARCHAR)") {
		t.Errorf("expected content projection:\n%s", withList)
	}
}

func TestStaticSource(t *testing.T) {
	t.Parallel()

	rows := []quality.Problem{{Title: "Two Sum", Likes: 10}}
	src := NewStaticSource(rows)
	rows[0].Likes = 99

	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got[0].Likes != 10 {
		t.Errorf("source should hold a copy, got likes %d", got[0].Likes)
	}

	src.Err = ErrUnavailable
	if _, err := src.Load(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected configured error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStaticSource(nil).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFileSource_LoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problems.csv")
	data := strings.Join([]string{
		"title,difficulty,likes,dislikes,acceptance_rate,has_solution,has_video_solution,is_paid_only,topic_tags",
		`Two Sum,Easy,9000,1000,49.1,true,true,false,"Array,Hash Table"`,
		"Quiet Problem,Medium,0,0,60.0,false,false,true,",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	src, err := NewFileSource(path, FormatAuto)
	if err != nil {
		t.Fatalf("NewFileSource: %v", err)
	}
	rows, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Title != "Two Sum" || first.Difficulty != quality.DifficultyEasy {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Likes != 9000 || first.Dislikes != 1000 || !first.HasSolution || first.IsPaidOnly {
		t.Errorf("unexpected first row values: %+v", first)
	}
	if !reflect.DeepEqual(first.TopicTags, []string{"Array", "Hash Table"}) {
		t.Errorf("TopicTags = %v", first.TopicTags)
	}
	if !rows[1].IsPaidOnly || len(rows[1].TopicTags) != 0 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestFileSource_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv")
	if err := os.WriteFile(path, []byte("title,likes\nTwo Sum,10\n"), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	src, err := NewFileSource(path, FormatCSV)
	if err != nil {
		t.Fatalf("NewFileSource: %v", err)
	}
	if _, err := src.Load(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
