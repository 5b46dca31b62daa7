package task

// Category is a fixed grouping bucket. The table below defines both the
// recognized category ids and the display order of the grouped board.
type Category struct {
	ID    string
	Label string
	Emoji string
}

const DefaultCategory = "inbox"

// Categories is static reference data, not user-editable.
var Categories = []Category{
	{ID: "inbox", Label: "Inbox", Emoji: "📥"},
	{ID: "home", Label: "Home", Emoji: "🏠"},
	{ID: "work", Label: "Work", Emoji: "💼"},
	{ID: "personal", Label: "Personal", Emoji: "🧑‍🎤"},
	{ID: "shopping", Label: "Shopping", Emoji: "🛒"},
	{ID: "other", Label: "Other", Emoji: "🔖"},
}

// CategoryByID returns the fixed category with the given id, or nil for
// ad-hoc categories carried over from persisted data.
func CategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}
