package models

import "time"

// PointEvent is a single award or penalty against a house.
// Events are never mutated in place; the only change allowed is deletion.
type PointEvent struct {
	// ID is the unique identifier for the event (UUID format).
	ID string `json:"id"`

	// HouseID references the beneficiary house. The reference is not
	// enforced: the house may have been deleted since.
	HouseID string `json:"houseId"`

	// StudentName is optional; empty means the whole house is the beneficiary.
	StudentName string `json:"studentName,omitempty"`

	// Points is signed and unbounded. Its sign only decides the display class.
	Points int `json:"points"`

	Reason      string `json:"reason"`
	TeacherName string `json:"teacherName"`
	TeacherRole Role   `json:"teacherRole"`

	// Timestamp is the creation instant in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// Time returns the creation instant.
func (e PointEvent) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// IsCredit reports whether the event adds points (zero counts as a credit).
func (e PointEvent) IsCredit() bool {
	return e.Points >= 0
}
