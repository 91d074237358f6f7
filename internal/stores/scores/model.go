package scores

import "time"

// ScoreEntry is one scored attempt in the append-only ledger. Entries are
// only ever created; there is no update or delete path.
type ScoreEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the legacy table name
func (ScoreEntry) TableName() string {
	return "scores"
}

// LeaderboardRow is one user's best score joined to their username
type LeaderboardRow struct {
	Username  string `json:"username"`
	HighScore int    `json:"high_score"`
}

// displayZone is the fixed UTC+5:30 offset the original deployment formatted
// timestamps in. Storage is UTC; the offset applies only at display time.
var displayZone = time.FixedZone("UTC+05:30", 5*3600+1800)

// DisplayTimeFormat renders dates as dd/mm/yyyy hh:mm:ss
const DisplayTimeFormat = "02/01/2006 15:04:05"

// FormatDisplayTime formats a stored timestamp for client display
func FormatDisplayTime(t time.Time) string {
	return t.In(displayZone).Format(DisplayTimeFormat)
}
