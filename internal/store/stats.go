package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string `json:"db_path"`
	DBSizeBytes int64  `json:"db_size_bytes"`
	Messages    int    `json:"messages"`
	Questions   int    `json:"questions"`
	Settings    int    `json:"settings"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&st.Messages)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE role = ?`, RoleUser).Scan(&st.Questions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings`).Scan(&st.Settings)

	return st, nil
}
