package task

import "strings"

// Filter keeps tasks that pass the unfinished toggle and the free-text
// query. The query matches case-insensitively against text, category,
// date and time. A blank query matches everything.
func Filter(tasks []Task, query string, onlyUnfinished bool) []Task {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Task
	for _, t := range tasks {
		if onlyUnfinished && t.Done {
			continue
		}
		if q != "" && !matchesQuery(t, q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(t Task, q string) bool {
	return strings.Contains(strings.ToLower(t.Text), q) ||
		strings.Contains(strings.ToLower(t.Category), q) ||
		strings.Contains(strings.ToLower(t.Date), q) ||
		strings.Contains(strings.ToLower(t.Time), q)
}

// Grouped is the partition of a task sequence by category. Keys holds
// bucket ids in display order: the fixed categories first (always
// present, even when empty), then ad-hoc categories in first-seen order.
type Grouped struct {
	Keys    []string
	Buckets map[string][]Task
}

// Tasks returns the bucket for a category id, which may be empty.
func (g Grouped) Tasks(id string) []Task {
	return g.Buckets[id]
}

// Group partitions tasks by category. Relative order within a bucket is
// the input order, so a newest-first collection yields newest-first
// buckets.
func Group(tasks []Task) Grouped {
	g := Grouped{Buckets: make(map[string][]Task, len(Categories))}
	for _, c := range Categories {
		g.Keys = append(g.Keys, c.ID)
		g.Buckets[c.ID] = nil
	}
	for _, t := range tasks {
		if _, ok := g.Buckets[t.Category]; !ok {
			g.Keys = append(g.Keys, t.Category)
		}
		g.Buckets[t.Category] = append(g.Buckets[t.Category], t)
	}
	return g
}
