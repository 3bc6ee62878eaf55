package transducer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/theoremus-urban-solutions/ekitan-modify/utils"
)

// anchor is the output index a leg duration is written to and the clock
// time the leg started at.
type anchor struct {
	index int
	at    time.Time
}

// Transducer holds the state of one pass over a route dump.
type Transducer struct {
	m   *matchers
	opt Options
	out *Buffer

	lineNo   int
	headline string

	leg       *anchor
	planStart *anchor
	plan      string
	open      map[string]bool

	// pending plan ends, kept in first-insertion order
	pending     map[string]anchor
	pendingKeys []string
}

// New creates a transducer. Empty option fields take their defaults.
func New(o Options) *Transducer {
	o = o.withDefaults()
	return &Transducer{
		m:       newMatchers(o),
		opt:     o,
		out:     NewBuffer(),
		open:    map[string]bool{},
		pending: map[string]anchor{},
	}
}

// Process feeds every line of r and returns the annotated output.
func (t *Transducer) Process(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := t.Feed(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return t.Result(), nil
}

// Feed consumes one raw input line.
func (t *Transducer) Feed(raw string) error {
	t.lineNo++
	line := strings.TrimSpace(raw)

	if t.m.dropped(line) {
		return nil
	}
	if t.m.headline(line) {
		t.headline = line
		return nil
	}
	if t.headline != "" {
		line = line + "\t" + t.headline
		t.headline = ""
	}

	if name, ok := t.m.planName(line); ok {
		t.enterPlan(name)
	}

	mark, err := t.m.timeMark(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", t.lineNo, err)
	}
	switch mark.kind {
	case markDeparture:
		t.writeDurations(mark.at)
		t.leg = &anchor{index: t.out.Len(), at: mark.at}
	case markArrival:
		t.writeDurations(mark.at)
		// the arrival note belongs on the line after the arrival line
		t.leg = &anchor{index: t.out.Len() + 1, at: mark.at}
	}

	t.out.Push(line)
	return nil
}

// Result returns the output lines. Notes still addressed past the last
// line are dropped.
func (t *Transducer) Result() []Line {
	if n := t.out.Dangling(); n > 0 {
		log.Warn("annotations past end of input dropped", "count", n)
	}
	return t.out.Lines()
}

func (t *Transducer) enterPlan(name string) {
	if t.plan == "" {
		t.planStart = t.leg
	} else if t.leg != nil {
		if _, seen := t.pending[t.plan]; !seen {
			t.pendingKeys = append(t.pendingKeys, t.plan)
		}
		t.pending[t.plan] = *t.leg
	}

	if name == t.opt.PlanEndName {
		log.Debug("plans closed", "line", t.lineNo, "last", t.plan)
		t.plan = ""
		clear(t.open)
		return
	}
	log.Debug("plan opened", "line", t.lineNo, "name", name)
	t.plan = name
	t.open[name] = true
}

// writeDurations annotates the legs that end at now. It is a no-op until
// the first time mark has been seen.
func (t *Transducer) writeDurations(now time.Time) {
	if t.leg == nil {
		return
	}

	switch {
	case t.plan != "":
		if t.open[t.plan] {
			if t.planStart != nil {
				if d, ok := utils.ClockDelta(t.planStart.at, now); ok {
					t.out.Annotate(t.planStart.index, fmt.Sprintf(" %s %s: %s", t.opt.PlanKeyword, t.plan, utils.FormatDuration(d)))
				}
			}
			delete(t.open, t.plan)
		}
	case len(t.pendingKeys) > 0:
		for _, name := range t.pendingKeys {
			t.annotateLeg(t.pending[name], now)
		}
		clear(t.pending)
		t.pendingKeys = t.pendingKeys[:0]
	}

	t.annotateLeg(*t.leg, now)
}

func (t *Transducer) annotateLeg(a anchor, now time.Time) {
	d, ok := utils.ClockDelta(a.at, now)
	if !ok {
		log.Debug("clock went back, leg not annotated", "line", t.lineNo, "from", a.at.Format("15:04"), "to", now.Format("15:04"))
		return
	}
	t.out.Annotate(a.index, " "+utils.FormatDuration(d))
}
