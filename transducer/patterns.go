package transducer

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/width"

	"github.com/theoremus-urban-solutions/ekitan-modify/utils"
)

type markKind int

const (
	markNone markKind = iota
	markDeparture
	markArrival
)

type timeMark struct {
	kind markKind
	at   time.Time
}

type matchers struct {
	drop      []string
	separator string
	plan      *regexp.Regexp
	departure *regexp.Regexp
	arrival   *regexp.Regexp
}

func newMatchers(o Options) *matchers {
	return &matchers{
		drop:      o.DropPrefixes,
		separator: o.HeadlineSeparator,
		plan:      regexp.MustCompile(`^` + regexp.QuoteMeta(o.PlanKeyword) + `\s+(\S+)`),
		departure: regexp.MustCompile(`(\d{1,2}):(\d{2})` + regexp.QuoteMeta(o.DepartureMarker)),
		arrival:   regexp.MustCompile(`(\d{1,2}):(\d{2})` + regexp.QuoteMeta(o.ArrivalMarker)),
	}
}

func (m *matchers) dropped(line string) bool {
	for _, p := range m.drop {
		if p != "" && strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// headline reports whether the separator occurs past the first byte.
func (m *matchers) headline(line string) bool {
	return strings.Index(line, m.separator) > 0
}

func (m *matchers) planName(line string) (string, bool) {
	sm := m.plan.FindStringSubmatch(line)
	if sm == nil {
		return "", false
	}
	return sm[1], true
}

// timeMark extracts a departure or arrival time, departure first.
// Full-width digits and colons are folded before matching.
func (m *matchers) timeMark(line string) (timeMark, error) {
	folded := width.Fold.String(line)
	for _, c := range []struct {
		kind markKind
		re   *regexp.Regexp
	}{
		{markDeparture, m.departure},
		{markArrival, m.arrival},
	} {
		sm := c.re.FindStringSubmatch(folded)
		if sm == nil {
			continue
		}
		at, err := utils.ParseClock(sm[1], sm[2])
		if err != nil {
			return timeMark{}, err
		}
		return timeMark{kind: c.kind, at: at}, nil
	}
	return timeMark{}, nil
}
