package activity

// Activity is an extracurricular offering with a participant roster.
// Activities are keyed by their human-readable name ("Basketball"); the
// name is carried on the struct but serialized as the map key, not as a
// field.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Directory maps activity name to its current record.
type Directory map[string]Activity
