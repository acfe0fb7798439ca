package models

// TimelineStatus is the progress state of a planning milestone
type TimelineStatus string

const (
	TimelinePending   TimelineStatus = "pending"
	TimelineCompleted TimelineStatus = "completed"
	TimelineUpcoming  TimelineStatus = "upcoming"
)

// Valid reports whether s is a known timeline status
func (s TimelineStatus) Valid() bool {
	return s == TimelinePending || s == TimelineCompleted || s == TimelineUpcoming
}

// TimelineEvent is a dated milestone on the wedding planning timeline
type TimelineEvent struct {
	ID          string         `json:"id" yaml:"id"`
	Date        string         `json:"date" yaml:"date"`
	Time        string         `json:"time" yaml:"time"`
	Event       string         `json:"event" yaml:"event"`
	Status      TimelineStatus `json:"status" yaml:"status"`
	Description string         `json:"description" yaml:"description"`
}
