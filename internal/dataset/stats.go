package dataset

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath       string        `json:"db_path"`
	DBSizeBytes  int64         `json:"db_size_bytes"`
	TotalEntries int           `json:"total_entries"`
	Letters      []LetterStats `json:"letters"`
}

// LetterStats holds per-letter entry counts.
type LetterStats struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&st.TotalEntries)

	rows, err := s.db.QueryContext(ctx, `
		SELECT letter, COUNT(*) as cnt
		FROM entries
		GROUP BY letter ORDER BY letter`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ls LetterStats
		rows.Scan(&ls.Letter, &ls.Count)
		st.Letters = append(st.Letters, ls)
	}

	return st, nil
}
