package extract

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Rating is one reviewer score slot. Valid is false when the slot never
// populated or its text could not be parsed as a number.
type Rating struct {
	Value float64
	Valid bool
}

func (r Rating) String() string {
	if !r.Valid {
		return "-"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// SubmissionRecord is one row of the final output.
type SubmissionRecord struct {
	Seq         int
	ID          string
	Title       string
	ForumURL    string
	Ratings     []Rating
	Confidences []Rating
}

// RatingValues returns only the populated rating values, in slot order.
func (s *SubmissionRecord) RatingValues() []float64 {
	var vals []float64
	for _, r := range s.Ratings {
		if r.Valid {
			vals = append(vals, r.Value)
		}
	}
	return vals
}

// MeanRating reports the mean of populated ratings. ok is false when no
// rating has populated.
func (s *SubmissionRecord) MeanRating() (mean float64, ok bool) {
	vals := s.RatingValues()
	if len(vals) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}

// RatingVariance reports the population variance of populated ratings.
func (s *SubmissionRecord) RatingVariance() (variance float64, ok bool) {
	mean, ok := s.MeanRating()
	if !ok {
		return 0, false
	}
	vals := s.RatingValues()
	var sum float64
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(vals)), true
}

// RunStats summarizes one extraction run.
type RunStats struct {
	Conference    string
	RowsFound     int
	RowsSkipped   int
	RatingsAbsent int
	Duplicates    int
	Elapsed       time.Duration
}

// ResultSet is the ordered, immutable output of one run. Records are
// copied in and out so callers cannot mutate the assembled state.
type ResultSet struct {
	records []SubmissionRecord
	stats   RunStats
}

func (rs *ResultSet) Len() int {
	return len(rs.records)
}

func (rs *ResultSet) Records() []SubmissionRecord {
	out := make([]SubmissionRecord, len(rs.records))
	copy(out, rs.records)
	return out
}

func (rs *ResultSet) Stats() RunStats {
	return rs.stats
}

// Fingerprint hashes the extracted content. Two runs against an
// unchanged, fully rendered portal page produce the same fingerprint.
func (rs *ResultSet) Fingerprint() string {
	var b strings.Builder
	for _, rec := range rs.records {
		b.WriteString(fmt.Sprintf("%d|%s|%s|", rec.Seq, rec.ID, rec.Title))
		for _, r := range rec.Ratings {
			b.WriteString(r.String())
			b.WriteByte(';')
		}
		for _, c := range rec.Confidences {
			b.WriteString(c.String())
			b.WriteByte(';')
		}
		b.WriteByte('\n')
	}
	hash := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", hash)
}
