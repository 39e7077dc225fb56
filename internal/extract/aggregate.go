package extract

import "confreview-parser/internal/observability"

// Assemble assigns 1-based sequence indices in arrival order and seals
// the records into a ResultSet. Duplicate identifiers are warned about
// but kept: portals can legitimately show reposted entries.
func Assemble(records []SubmissionRecord, stats RunStats, logger *observability.Logger) *ResultSet {
	seen := make(map[string]int, len(records))
	sealed := make([]SubmissionRecord, len(records))

	for i, rec := range records {
		rec.Seq = i + 1

		if rec.ID != "" {
			if firstSeq, ok := seen[rec.ID]; ok {
				stats.Duplicates++
				logger.Warn("Duplicate submission identifier",
					"id", rec.ID,
					"seq", rec.Seq,
					"first_seq", firstSeq,
				)
			} else {
				seen[rec.ID] = rec.Seq
			}
		}

		sealed[i] = rec
	}

	return &ResultSet{
		records: sealed,
		stats:   stats,
	}
}
