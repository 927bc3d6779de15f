package pagerec

import (
	"regexp"
	"strings"
	"time"
)

// DateRange is the span parsed from a free-text date line such as
// "Jan 2019 - Present · 5 yrs".
type DateRange struct {
	From      string
	To        string
	IsCurrent bool
}

// Saved pages often separate month and year with a non-breaking space, so
// the range patterns accept any Unicode space.
const (
	monthPattern = `(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`
	spacePattern = `[\s\p{Zs}]`
)

var (
	monthRangeRe = regexp.MustCompile(`(?i)` + monthPattern + spacePattern + `+(\d{4})` + spacePattern + `*[-–]` + spacePattern + `*(Present|` + monthPattern + spacePattern + `+(\d{4}))`)
	yearRangeRe  = regexp.MustCompile(`(?i)(\d{4})` + spacePattern + `*[-–]` + spacePattern + `*(\d{4}|Present)`)
)

// DateParser parses date ranges relative to a clock.
type DateParser struct {
	// Now returns the reference time for future-dated entries.
	// Defaults to time.Now.
	Now func() time.Time
}

// ParseDateRange parses text relative to the current time.
func ParseDateRange(text string) DateRange {
	return (&DateParser{}).Parse(text)
}

// Parse extracts a date range from text. It tries "Mon YYYY - Mon YYYY" and
// then "YYYY - YYYY", with "Present" accepted as the end of either. An end
// date later than now marks the range current, which covers expected
// graduation dates. Unrecognized text yields NotAvailable for both ends.
func (p *DateParser) Parse(text string) DateRange {
	r := DateRange{From: NotAvailable, To: NotAvailable}

	if m := monthRangeRe.FindStringSubmatch(text); m != nil {
		r.From = m[1] + " " + m[2]
		if strings.Contains(strings.ToLower(m[3]), "present") {
			r.To = "Present"
			r.IsCurrent = true
		} else {
			r.To = m[4] + " " + m[5]
		}
	} else if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		r.From = m[1]
		r.To = m[2]
		if strings.Contains(strings.ToLower(m[2]), "present") {
			r.IsCurrent = true
		}
	}

	if !r.IsCurrent && r.To != NotAvailable {
		r.IsCurrent = p.inFuture(r.To)
	}
	return r
}

func (p *DateParser) inFuture(end string) bool {
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}
	end = strings.Join(strings.Fields(end), " ")
	if t, err := time.Parse("Jan 2006", end); err == nil {
		return t.After(now)
	}
	if t, err := time.Parse("2006", end); err == nil {
		return t.Year() > now.Year()
	}
	return false
}
