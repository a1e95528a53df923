package domain

import "time"

// AfkStatus represents the state of an AFK session. It only moves forward.
type AfkStatus string

const (
	AfkStatusRunning   AfkStatus = "running"
	AfkStatusCompleted AfkStatus = "completed"
)

// AfkSession is one idle-progression run of a character
type AfkSession struct {
	ID               int         `json:"id"`
	CharacterID      int         `json:"character_id"`
	StartTime        time.Time   `json:"start_time"`
	EndTime          time.Time   `json:"end_time"`
	Realm            Realm       `json:"realm"`
	ExperienceGained int64       `json:"experience_gained"`
	ItemsFound       []ItemStack `json:"items_found"`
	Status           AfkStatus   `json:"status"`
	IsCompleted      bool        `json:"is_completed"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// Completed reports whether the session has been settled
func (s *AfkSession) Completed() bool {
	return s.Status == AfkStatusCompleted
}

// Due reports whether the session may be settled at now
func (s *AfkSession) Due(now time.Time) bool {
	return !now.Before(s.EndTime)
}

// AfkSkipReason explains why a completion request changed nothing
type AfkSkipReason string

const (
	AfkSkipNone             AfkSkipReason = ""
	AfkSkipNotFound         AfkSkipReason = "session_not_found"
	AfkSkipAlreadyCompleted AfkSkipReason = "already_completed"
	AfkSkipNotDue           AfkSkipReason = "not_due"
)

// AfkCompletion is returned by CompleteAfkSession. Completed is false when
// the request was a no-op, with Reason saying why.
type AfkCompletion struct {
	Completed        bool          `json:"completed"`
	Reason           AfkSkipReason `json:"reason,omitempty"`
	Session          *AfkSession   `json:"session,omitempty"`
	Character        *Character    `json:"character,omitempty"`
	ExperienceGained int64         `json:"experience_gained"`
	ItemsCredited    []ItemStack   `json:"items_credited,omitempty"`
	TimeLeft         string        `json:"time_left,omitempty"`
}
