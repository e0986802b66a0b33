package sensory

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// InputParseOptions allows callers to choose which CSV columns map to record fields.
// Values are header names or 1-based "#N" indices.
type InputParseOptions struct {
	EventColumn   string
	SampleColumn  string
	CommentColumn string
}

var columnCandidates = struct {
	Event   []string
	Sample  []string
	Comment []string
}{
	Event:   []string{"event", "session", "panel"},
	Sample:  []string{"sample", "sample type", "sample_type", "type"},
	Comment: []string{"comments", "comment", "text", "notes"},
}

// ParseCommentFile reads a CSV or TSV tasting sheet into records. The sample
// and comment columns are required; rows without them cannot be loaded since
// silent skips would corrupt partition percentages downstream. Empty comment
// cells are kept as empty text.
func ParseCommentFile(path string) ([]Record, error) {
	return ParseCommentFileWithOptions(path, InputParseOptions{})
}

// ParseCommentFileWithOptions allows callers to specify column mappings
// when reading structured files.
func ParseCommentFileWithOptions(path string, opts InputParseOptions) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty input file")
	}
	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}

	eventCol, err := pickColumn(header, opts.EventColumn, columnCandidates.Event)
	if err != nil {
		return nil, err
	}
	sampleCol, err := pickColumn(header, opts.SampleColumn, columnCandidates.Sample)
	if err != nil {
		return nil, err
	}
	commentCol, err := pickColumn(header, opts.CommentColumn, columnCandidates.Comment)
	if err != nil {
		return nil, err
	}
	if sampleCol < 0 || commentCol < 0 {
		return nil, fmt.Errorf("input %s lacks required sample/comment columns (header: %s)",
			filepath.Base(path), strings.Join(header, ", "))
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if sampleCol >= len(row) || commentCol >= len(row) {
			return nil, fmt.Errorf("row %d is missing required cells", i+2)
		}
		rec := Record{
			Sample: SampleType(cleanCell(row[sampleCol])),
			Text:   cleanCell(row[commentCol]),
		}
		if eventCol >= 0 && eventCol < len(row) {
			rec.Event = cleanCell(row[eventCol])
		}
		if rec.Sample == "" {
			return nil, fmt.Errorf("row %d has an empty sample type", i+2)
		}
		records = append(records, rec)
	}
	return records, nil
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}

func pickColumn(header []string, explicit string, candidates []string) (int, error) {
	trimmed := strings.TrimSpace(explicit)
	if trimmed != "" {
		for i, col := range header {
			if strings.EqualFold(col, trimmed) {
				return i, nil
			}
		}
		if strings.HasPrefix(trimmed, "#") {
			idx, err := strconv.Atoi(strings.TrimPrefix(trimmed, "#"))
			if err != nil || idx <= 0 {
				return -1, fmt.Errorf("invalid column index %q", trimmed)
			}
			if idx > len(header) {
				return -1, fmt.Errorf("column index %s is out of range", trimmed)
			}
			return idx - 1, nil
		}
		return -1, fmt.Errorf("column %q not found", explicit)
	}
	for i, col := range header {
		for _, cand := range candidates {
			if strings.EqualFold(col, cand) {
				return i, nil
			}
		}
	}
	return -1, nil
}

// ExportRecords projects records to {sample, text} and writes them as an
// indented JSON array, preserving input order. Duplicate texts are retained:
// repeated phrasing across tasters is signal, not noise.
func ExportRecords(path string, records []Record) error {
	out := make([]ExportedRecord, len(records))
	for i, rec := range records {
		out[i] = ExportedRecord{Sample: string(rec.Sample), Text: rec.Text}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	tmp := path + ".tmp"
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename export: %w", err)
	}
	return nil
}

// LoadExported reads the interchange document written by ExportRecords.
func LoadExported(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	var rows []ExportedRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{Sample: SampleType(row.Sample), Text: row.Text}
	}
	return records, nil
}

// Partition groups records by sample type, preserving input order within
// each group.
func Partition(records []Record) map[SampleType][]Record {
	out := make(map[SampleType][]Record)
	for _, rec := range records {
		out[rec.Sample] = append(out[rec.Sample], rec)
	}
	return out
}
