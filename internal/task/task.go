package task

import "strings"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// DefaultPriority is used when user input is missing/invalid.
const DefaultPriority Priority = PriorityMedium

// DefaultColor is the accent applied to tasks created without an explicit color.
const DefaultColor = "#ff8fa3"

// Task is a single planner entry. Date and Time are stored as the plain
// strings the user committed ("2006-01-02" and "HH:MM"); empty means unset.
type Task struct {
	ID       int64    `json:"id"`
	Text     string   `json:"text"`
	Done     bool     `json:"done"`
	Priority Priority `json:"priority"`
	Date     string   `json:"date,omitempty"`
	Time     string   `json:"time,omitempty"`
	Color    string   `json:"color,omitempty"`
	Category string   `json:"category"`
}

// ParsePriority parses user input to a Priority.
// Empty or unrecognized input returns DefaultPriority.
func ParsePriority(input string) Priority {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low":
		return PriorityLow
	case "medium", "med":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return DefaultPriority
	}
}
