package extract

import (
	"testing"

	"confreview-parser/internal/observability"
)

func TestAssembleSequencing(t *testing.T) {
	raw := []SubmissionRecord{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
	}

	rs := Assemble(raw, RunStats{RowsFound: 3}, observability.NewLogger("", "error"))

	if rs.Len() != 3 {
		t.Fatalf("len=%d, want 3", rs.Len())
	}
	for i, rec := range rs.Records() {
		if rec.Seq != i+1 {
			t.Errorf("seq = %d, want %d", rec.Seq, i+1)
		}
	}
}

func TestAssembleDuplicateIDsWarnNotFail(t *testing.T) {
	raw := []SubmissionRecord{
		{ID: "dup", Title: "First"},
		{ID: "dup", Title: "Reposted"},
	}

	rs := Assemble(raw, RunStats{}, observability.NewLogger("", "error"))

	// Portals can legitimately show reposted entries: both kept.
	if rs.Len() != 2 {
		t.Fatalf("len=%d, want 2", rs.Len())
	}
	if rs.Stats().Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", rs.Stats().Duplicates)
	}
}

func TestResultSetImmutable(t *testing.T) {
	raw := []SubmissionRecord{{ID: "a", Title: "A"}}
	rs := Assemble(raw, RunStats{}, observability.NewLogger("", "error"))

	rs.Records()[0].Title = "mutated"
	if rs.Records()[0].Title != "A" {
		t.Errorf("ResultSet mutated through accessor")
	}

	// Mutating the input slice after assembly must not leak in either.
	raw[0].Title = "mutated"
	if rs.Records()[0].Title != "A" {
		t.Errorf("ResultSet shares backing array with input")
	}
}

func TestRatingStats(t *testing.T) {
	rec := SubmissionRecord{
		Ratings: []Rating{
			{Value: 8, Valid: true},
			{Valid: false},
			{Value: 6, Valid: true},
		},
	}

	mean, ok := rec.MeanRating()
	if !ok || mean != 7 {
		t.Errorf("mean = %v (%v), want 7", mean, ok)
	}
	variance, ok := rec.RatingVariance()
	if !ok || variance != 1 {
		t.Errorf("variance = %v (%v), want 1", variance, ok)
	}

	empty := SubmissionRecord{}
	if _, ok := empty.MeanRating(); ok {
		t.Errorf("mean of no ratings should not be ok")
	}
}
