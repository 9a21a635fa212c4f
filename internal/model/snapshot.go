package model

import "time"

// Checkpoint identifies a saved tour.
type Checkpoint struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"saved_at"`
}

// Snapshot is a mutually consistent copy of the search state, taken under a
// single lock so that tours and scores always belong together.
type Snapshot struct {
	Points []Point `json:"points"`

	Current      Tour    `json:"current"`
	CurrentScore float32 `json:"current_score"`

	Best  Tour    `json:"best"`
	Score float32 `json:"score"`

	Saved      Tour       `json:"saved"`
	SavedScore float32    `json:"saved_score"`
	Checkpoint Checkpoint `json:"checkpoint"`

	Steps    uint64 `json:"steps"`    // Candidates generated since the last reset
	Accepted uint64 `json:"accepted"` // Candidates that replaced the best tour
}

// HasBest reports whether a best tour has been found since the last reset.
func (s Snapshot) HasBest() bool {
	return len(s.Best) > 0
}

// HasSaved reports whether a checkpoint is held.
func (s Snapshot) HasSaved() bool {
	return len(s.Saved) > 0
}

// AcceptanceRate returns the share of steps that replaced the best tour.
func (s Snapshot) AcceptanceRate() float64 {
	if s.Steps == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Steps)
}
