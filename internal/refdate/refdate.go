// Package refdate parses the reference date given on the command line.
package refdate

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parse returns the reference time named by s. An empty string, "now" or
// "today" give now. Anything else is parsed in loc; ambiguous numeric
// dates are month first ("05/11/2017" is May 11).
func Parse(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "now", "today":
		return now.In(loc), nil
	}

	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference date %q: %w", s, err)
	}
	return t, nil
}
