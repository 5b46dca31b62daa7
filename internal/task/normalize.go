package task

// Record is the loosely-typed shape tasks take in the persistence slot:
// any subset of fields may be present, extra fields are ignored by the
// JSON decoder. It never flows past Normalize.
type Record struct {
	ID       *int64  `json:"id,omitempty"`
	Text     *string `json:"text,omitempty"`
	Done     *bool   `json:"done,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Color    *string `json:"color,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Normalize converts an untrusted record into a canonical Task, filling
// defaults for every absent field. nextID supplies ids for records that
// lost theirs; it is only called when needed. Text is not re-validated
// here: a persisted record without text yields an empty-text task.
func Normalize(r Record, nextID func() int64) Task {
	t := Task{
		Done:     false,
		Priority: DefaultPriority,
		Color:    DefaultColor,
		Category: DefaultCategory,
	}

	if r.ID != nil {
		t.ID = *r.ID
	} else {
		t.ID = nextID()
	}
	if r.Text != nil {
		t.Text = *r.Text
	}
	if r.Done != nil {
		t.Done = *r.Done
	}
	if r.Priority != nil {
		if p := Priority(*r.Priority); p.IsValid() {
			t.Priority = p
		}
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
	if r.Time != nil {
		t.Time = *r.Time
	}
	if r.Color != nil && *r.Color != "" {
		t.Color = *r.Color
	}
	// Unrecognized categories are preserved; grouping gives them an
	// ad-hoc bucket rather than folding them into inbox.
	if r.Category != nil && *r.Category != "" {
		t.Category = *r.Category
	}
	return t
}

// NormalizeAll runs Normalize over a whole loaded collection, preserving
// order. It must run before any mutation is accepted.
func NormalizeAll(records []Record, nextID func() int64) []Task {
	out := make([]Task, 0, len(records))
	for _, r := range records {
		out = append(out, Normalize(r, nextID))
	}
	return out
}
