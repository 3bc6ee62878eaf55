package transducer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ekitan-modify/utils"
)

func run(t *testing.T, in ...string) []string {
	t.Helper()
	tr := New(DefaultOptions())
	for _, l := range in {
		require.NoError(t, tr.Feed(l))
	}
	var out []string
	for _, l := range tr.Result() {
		out = append(out, l.String())
	}
	return out
}

func TestTransducer_Lines(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "plain lines pass through",
			input:    []string{"経路1", "JR山手線", "", "料金 1,000円"},
			expected: []string{"経路1", "JR山手線", "", "料金 1,000円"},
		},
		{
			name:     "surrounding whitespace is stripped",
			input:    []string{"  JR山手線 品川行\r"},
			expected: []string{"JR山手線 品川行"},
		},
		{
			name:     "headline merges into next line",
			input:    []string{"新宿 → 京都", "経路1"},
			expected: []string{"経路1\t新宿 → 京都"},
		},
		{
			name:     "separator at line start is not a headline",
			input:    []string{" → 京都", "経路1"},
			expected: []string{"→ 京都", "経路1"},
		},
		{
			name:     "later headline replaces pending one",
			input:    []string{"新宿 → 品川", "品川 → 京都", "経路1"},
			expected: []string{"経路1\t品川 → 京都"},
		},
		{
			name:     "fare lines are dropped and keep headline pending",
			input:    []string{"新宿 → 京都", "往復：27,440円", "※大人料金", "経路1"},
			expected: []string{"経路1\t新宿 → 京都"},
		},
		{
			name:     "departure then arrival",
			input:    []string{"09:00発 新宿", "09:15着 品川"},
			expected: []string{"09:00発 新宿 15分", "09:15着 品川"},
		},
		{
			name:     "dropped lines do not move anchors",
			input:    []string{"09:00発", "往復：1000円", "※大人 500円", "09:10着"},
			expected: []string{"09:00発 10分", "09:10着"},
		},
		{
			name:     "arrival anchors the following line",
			input:    []string{"09:00発", "09:10着", "乗換", "09:20発"},
			expected: []string{"09:00発 10分", "09:10着", "乗換 10分", "09:20発"},
		},
		{
			name:     "note for a line not yet emitted lands on it",
			input:    []string{"09:00発", "09:10着", "09:20発"},
			expected: []string{"09:00発 10分", "09:10着", "09:20発 10分"},
		},
		{
			name:     "midnight crossing wraps",
			input:    []string{"23:50発", "00:20着"},
			expected: []string{"23:50発 30分", "00:20着"},
		},
		{
			name:     "full width clock",
			input:    []string{"０９：００発", "１０：０５着"},
			expected: []string{"０９：００発 1:05分", "１０：０５着"},
		},
		{
			name:     "plan and leg notes fire together",
			input:    []string{"09:00発", "Plan A", "10:05着", "Plan End"},
			expected: []string{"09:00発 Plan A: 1:05分 1:05分", "Plan A", "10:05着", "Plan End"},
		},
		{
			name:  "repeated plan end adds nothing",
			input: []string{"09:00発", "Plan A", "10:05着", "Plan End", "Plan End", "10:30発"},
			expected: []string{
				"09:00発 Plan A: 1:05分 1:05分", "Plan A", "10:05着",
				"Plan End 25分 25分", "Plan End", "10:30発",
			},
		},
		{
			name:  "plan opened before any time mark",
			input: []string{"Plan X", "09:00発", "09:40着", "Plan End", "10:00発"},
			expected: []string{
				"Plan X", "09:00発 40分", "09:40着", "Plan End 20分 20分", "10:00発",
			},
		},
		{
			name: "superseded plan is flushed after plan end",
			input: []string{
				"09:00発", "Plan A", "09:30着", "Plan B", "09:05発", "09:45着", "Plan End", "10:00発",
			},
			expected: []string{
				"09:00発 Plan A: 30分 30分 Plan B: 5分", "Plan A", "09:30着", "Plan B 30分",
				"09:05発 40分", "09:45着", "Plan End 15分 15分", "10:00発",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, tt.input...))
		})
	}
}

func TestTransducer_AnnotationsAreSeparate(t *testing.T) {
	tr := New(DefaultOptions())
	lines, err := tr.Process(strings.NewReader("09:00発\nPlan A\n10:05着\n"))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "09:00発", lines[0].Text)
	assert.Equal(t, " Plan A: 1:05分 1:05分", lines[0].Annotation)
	assert.Empty(t, lines[1].Annotation)
}

func TestTransducer_InvalidClock(t *testing.T) {
	tr := New(DefaultOptions())
	require.NoError(t, tr.Feed("09:00発"))

	err := tr.Feed("25:10着")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrInvalidClock)
	assert.Contains(t, err.Error(), "line 2")
}

func TestTransducer_ProcessStopsOnError(t *testing.T) {
	tr := New(DefaultOptions())
	lines, err := tr.Process(strings.NewReader("09:00発\n09:75着\n10:00発\n"))
	assert.Nil(t, lines)
	assert.ErrorIs(t, err, utils.ErrInvalidClock)
}

func TestTransducer_CustomOptions(t *testing.T) {
	tr := New(Options{
		DropPrefixes:      []string{},
		HeadlineSeparator: " ~ ",
		PlanKeyword:       "案",
		PlanEndName:       "終",
	})
	for _, l := range []string{"往復：1000円", "A ~ B", "09:00発", "案 1", "09:20着", "案 終"} {
		require.NoError(t, tr.Feed(l))
	}

	var got []string
	for _, l := range tr.Result() {
		got = append(got, l.String())
	}
	assert.Equal(t, []string{"往復：1000円", "09:00発\tA ~ B 案 1: 20分 20分", "案 1", "09:20着", "案 終"}, got)
}

func TestTransducer_Golden(t *testing.T) {
	in, err := os.Open(filepath.Join("testdata", "route.txt"))
	require.NoError(t, err)
	defer func() { _ = in.Close() }()

	want, err := os.ReadFile(filepath.Join("testdata", "route.golden"))
	require.NoError(t, err)

	lines, err := New(DefaultOptions()).Process(in)
	require.NoError(t, err)

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	assert.Equal(t, string(want), b.String())
}
