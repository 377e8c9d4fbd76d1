// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// tolerantDate finds year, month and day separated by up to ten arbitrary
// characters and closed by 日, optionally followed by hour:minute. The
// separators are usually 年 and 月 but may be mojibake.
var tolerantDate = regexp.MustCompile(
	`(?P<year>\d{4}).{0,10}?(?P<month>\d{1,2}).{0,10}?(?P<day>\d{1,2}).{0,10}?日` +
		`(?:.{0,10}?(?P<hour>\d{1,2}):(?P<minute>\d{2}))?`)

// ParseDate extracts a publication time from a Factiva date line. It
// reports false when the line holds no date or the parts do not form a
// real calendar time.
func ParseDate(line string) (time.Time, bool) {
	m := tolerantDate.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return time.Time{}, false
	}

	part := func(name string) int {
		s := m[tolerantDate.SubexpIndex(name)]
		if s == "" {
			return 0
		}
		n, _ := strconv.Atoi(s)
		return n
	}

	year, month, day := part("year"), part("month"), part("day")
	hour, minute := part("hour"), part("minute")

	if year < 1 || month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Day() != day {
		// time.Date normalized an impossible day such as 2 月 30 日.
		return time.Time{}, false
	}
	return t, true
}
