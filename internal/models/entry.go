package models

import "time"

// Entry is one reading submission row from the competition form. Rows are
// immutable once received; Hours stays in its raw "H:MM:SS" shape and is
// parsed by the scoring package.
type Entry struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Email     string    `json:"email" bson:"email"`
	Hours     string    `json:"hours" bson:"hours"`
	Extra     string    `json:"extra,omitempty" bson:"extra,omitempty"`
}

// AdminWarning flags a suspicious row (unusually long duration) for manual
// review on the admin page.
type AdminWarning struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Name      string    `json:"name" bson:"name"`
	Hours     string    `json:"hours" bson:"hours"`
	Repaired  bool      `json:"repaired" bson:"repaired"`
}
