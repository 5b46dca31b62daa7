package task

import (
	"encoding/json"
	"testing"
)

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{
		"low":     PriorityLow,
		"HIGH":    PriorityHigh,
		" medium": PriorityMedium,
		"urgent":  PriorityMedium,
		"":        PriorityMedium,
	}
	for in, want := range cases {
		if got := ParsePriority(in); got != want {
			t.Fatalf("ParsePriority(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	var calls int
	nextID := func() int64 { calls++; return int64(1000 + calls) }

	got := Normalize(Record{}, nextID)
	if got.ID != 1001 {
		t.Fatalf("id=%d, want fresh id 1001", got.ID)
	}
	if got.Text != "" || got.Done {
		t.Fatalf("empty record should yield empty, not-done task: %+v", got)
	}
	if got.Priority != PriorityMedium {
		t.Fatalf("priority=%q, want medium", got.Priority)
	}
	if got.Color != DefaultColor {
		t.Fatalf("color=%q, want %q", got.Color, DefaultColor)
	}
	if got.Category != DefaultCategory {
		t.Fatalf("category=%q, want inbox", got.Category)
	}
}

func TestNormalizePreservesUnknownCategory(t *testing.T) {
	cat := "garden"
	prio := "whenever"
	id := int64(7)
	got := Normalize(Record{ID: &id, Category: &cat, Priority: &prio}, nil)
	if got.Category != "garden" {
		t.Fatalf("category=%q, want ad-hoc value preserved", got.Category)
	}
	if got.Priority != PriorityMedium {
		t.Fatalf("unknown priority should map to medium, got %q", got.Priority)
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	// normalize(serialize(normalize(x))) == normalize(x)
	id := int64(42)
	text := "water plants"
	done := true
	prio := "high"
	date := "2025-06-01"
	records := []Record{
		{},
		{ID: &id, Text: &text, Done: &done, Priority: &prio, Date: &date},
	}
	seq := int64(0)
	nextID := func() int64 { seq++; return seq }

	first := NormalizeAll(records, nextID)
	data, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back []Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	second := NormalizeAll(back, nextID)

	if len(first) != len(second) {
		t.Fatalf("length changed: %d != %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("task %d changed across round trip:\n  %+v\n  %+v", i, first[i], second[i])
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := map[string]string{
		"9:05":    "09:05",
		"09:05":   "09:05",
		"23:59":   "23:59",
		"7.30":    "07:30",
		"7,30":    "07:30",
		" 8:00 ":  "08:00",
		"24:00":   "",
		"12:60":   "",
		"noon":    "",
		"9:5":     "",
		"":        "",
		"123:45":  "",
		"12:345":  "",
	}
	for in, want := range cases {
		if got := NormalizeTime(in); got != want {
			t.Fatalf("NormalizeTime(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestTimeOptions(t *testing.T) {
	opts := TimeOptions()
	if len(opts) != 48 {
		t.Fatalf("len=%d, want 48", len(opts))
	}
	if opts[0] != "00:00" || opts[1] != "00:30" || opts[47] != "23:30" {
		t.Fatalf("unexpected options: %v %v %v", opts[0], opts[1], opts[47])
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2025-06-02"); got != "Mon Jun 2" {
		t.Fatalf("got %q, want %q", got, "Mon Jun 2")
	}
	if got := FormatDisplayDate("someday"); got != "someday" {
		t.Fatalf("unparseable input should pass through, got %q", got)
	}
	if got := FormatDisplayDate(""); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
}

func TestFilterQueryMatchesAllFields(t *testing.T) {
	tasks := []Task{
		{ID: 1, Text: "Buy milk", Category: "shopping"},
		{ID: 2, Text: "Call mom", Category: "personal"},
		{ID: 3, Text: "Standup", Category: "work", Date: "2025-06-02", Time: "09:30"},
	}

	got := Filter(tasks, "milk", false)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("query milk: got %+v", got)
	}
	if got := Filter(tasks, "PERSONAL", false); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("query by category should be case-insensitive: %+v", got)
	}
	if got := Filter(tasks, "09:3", false); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("query by time substring: %+v", got)
	}
	if got := Filter(tasks, "2025-06", false); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("query by date substring: %+v", got)
	}
	if got := Filter(tasks, "", false); len(got) != 3 {
		t.Fatalf("blank query should keep everything, got %d", len(got))
	}
}

func TestFilterUnfinished(t *testing.T) {
	tasks := []Task{
		{ID: 1, Text: "a", Done: true, Category: "inbox"},
		{ID: 2, Text: "b", Done: false, Category: "inbox"},
	}
	got := Filter(tasks, "", true)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unfinished filter: got %+v", got)
	}
}

func TestGroupSeedsFixedCategories(t *testing.T) {
	g := Group(nil)
	if len(g.Keys) != len(Categories) {
		t.Fatalf("keys=%d, want one per fixed category", len(g.Keys))
	}
	for i, c := range Categories {
		if g.Keys[i] != c.ID {
			t.Fatalf("key[%d]=%q, want %q (declaration order)", i, g.Keys[i], c.ID)
		}
		if len(g.Tasks(c.ID)) != 0 {
			t.Fatalf("bucket %q should be empty", c.ID)
		}
	}
}

func TestGroupAdHocBucketsAndCompleteness(t *testing.T) {
	tasks := []Task{
		{ID: 1, Category: "work"},
		{ID: 2, Category: "garden"},
		{ID: 3, Category: "work"},
		{ID: 4, Category: "attic"},
		{ID: 5, Category: "garden"},
	}
	g := Group(tasks)

	// ad-hoc categories appended in first-seen order
	n := len(Categories)
	if g.Keys[n] != "garden" || g.Keys[n+1] != "attic" {
		t.Fatalf("ad-hoc keys: %v", g.Keys[n:])
	}

	total := 0
	for _, key := range g.Keys {
		total += len(g.Tasks(key))
	}
	if total != len(tasks) {
		t.Fatalf("grouping lost tasks: %d != %d", total, len(tasks))
	}

	work := g.Tasks("work")
	if len(work) != 2 || work[0].ID != 1 || work[1].ID != 3 {
		t.Fatalf("intra-bucket order should match input order: %+v", work)
	}
}

func TestFilterThenGroup(t *testing.T) {
	tasks := []Task{
		{ID: 1, Text: "Buy milk", Category: "shopping"},
		{ID: 2, Text: "Call mom", Category: "personal"},
	}
	g := Group(Filter(tasks, "milk", false))
	if got := g.Tasks("shopping"); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("shopping bucket: %+v", got)
	}
	if got := g.Tasks("personal"); len(got) != 0 {
		t.Fatalf("personal bucket should be empty, got %+v", got)
	}
}
