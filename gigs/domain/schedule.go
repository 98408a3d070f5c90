package domain

import (
	"regexp"
	"strings"
)

// sessionPattern matches "18:00-20:00 Soundcheck" style lines. Both ":" and
// "." separate hours from minutes, the dash may be a hyphen or an en dash.
var sessionPattern = regexp.MustCompile(`^(\d{1,2})[:.](\d{2})\s*[-–]\s*(\d{1,2})[:.](\d{2})\s*(.*)$`)

// ParseSchedule parses free-text schedule lines into timed sessions. Lines
// that do not carry a parseable time range are skipped; the raw text is kept
// on the GigDate either way.
func ParseSchedule(text string) []Session {
	var sessions []Session

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := sessionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		start := padClock(m[1]) + ":" + m[2]
		end := padClock(m[3]) + ":" + m[4]

		sessions = append(sessions, Session{
			Start: start,
			End:   end,
			Label: strings.TrimSpace(m[5]),
		})
	}

	return sessions
}

func padClock(hour string) string {
	if len(hour) == 1 {
		return "0" + hour
	}

	return hour
}
