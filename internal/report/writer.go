package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"confreview-parser/internal/extract"
)

// Sink receives the final ResultSet and renders it.
type Sink interface {
	Write(rs *extract.ResultSet) error
}

// TableWriter renders the ResultSet as a console table, one submission
// per row, with the run summary underneath.
type TableWriter struct {
	out io.Writer
}

func NewTableWriter(out io.Writer) *TableWriter {
	return &TableWriter{out: out}
}

func (tw *TableWriter) Write(rs *extract.ResultSet) error {
	t := table.NewWriter()
	t.SetOutputMirror(tw.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "ID", "Title", "Ratings", "Avg", "Var", "Confidences"})

	for _, rec := range rs.Records() {
		t.AppendRow(table.Row{
			rec.Seq,
			rec.ID,
			rec.Title,
			joinRatings(rec.Ratings),
			formatStat(rec.MeanRating()),
			formatStat(rec.RatingVariance()),
			joinRatings(rec.Confidences),
		})
	}

	t.Render()

	stats := rs.Stats()
	fmt.Fprintf(tw.out, "%d submissions (%d rows skipped, %d rating slots absent) in %s\n",
		rs.Len(), stats.RowsSkipped, stats.RatingsAbsent, stats.Elapsed.Round(time.Millisecond))

	return nil
}

// CSVWriter exports the ResultSet for spreadsheet import.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

func (cw *CSVWriter) Write(rs *extract.ResultSet) error {
	if dir := filepath.Dir(cw.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(cw.path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{"seq", "id", "title", "ratings", "avg_rating", "confidences"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range rs.Records() {
		record := []string{
			strconv.Itoa(rec.Seq),
			rec.ID,
			rec.Title,
			joinRatings(rec.Ratings),
			formatStat(rec.MeanRating()),
			joinRatings(rec.Confidences),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

func joinRatings(ratings []extract.Rating) string {
	if len(ratings) == 0 {
		return ""
	}
	parts := make([]string, len(ratings))
	for i, r := range ratings {
		parts[i] = r.String()
	}
	return strings.Join(parts, ";")
}

func formatStat(value float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}
