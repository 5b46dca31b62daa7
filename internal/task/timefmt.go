package task

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// NormalizeTime canonicalizes user clock input to zero-padded 24-hour
// "HH:MM". "." and "," are accepted as separator typos. Returns "" for
// anything that does not parse to a valid clock time; callers revert to
// the prior committed value on "".
func NormalizeTime(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	v = strings.NewReplacer(".", ":", ",", ":").Replace(v)
	m := clockRe.FindStringSubmatch(v)
	if m == nil {
		return ""
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

// TimeOptions returns the half-hour suggestions offered while entering a
// time: 00:00, 00:30, … 23:30.
func TimeOptions() []string {
	out := make([]string, 0, 48)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 30 {
			out = append(out, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return out
}

// FormatDisplayDate renders a stored "2006-01-02" date for display
// ("Mon Jan 2" style). Presentation only: the stored value is never
// altered, and unparseable input is shown verbatim.
func FormatDisplayDate(d string) string {
	if d == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return t.Format("Mon Jan 2")
}
