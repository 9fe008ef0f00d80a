package aoc

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		ok      bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
			ok: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
			ok: true,
		},
		{
			comment: `// want=94`,
			want:    sample{want: "94"},
			ok:      true,
		},
		{
			comment: `// D17p1 solves part one.`,
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		assert.Equal(t, tt.ok, ok, "parseSample(%q) ok", tt.comment)
		assert.Equal(t, tt.want, got, "parseSample(%q)", tt.comment)
	}
}

const solverSrc = `package main

/*
want=7

12
34
*/
func (s solver) D1p1() any { return nil }

// want=9
func (s solver) D1p2() any { return nil }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	samples, err := extractSamples([]byte(solverSrc))
	require.NoError(t, err)
	assert.Len(t, samples, 2)
	assert.Equal(t, sample{want: "7", input: "12\n34\n"}, samples["D1p1"])
	// The second part inherits the first part's input.
	assert.Equal(t, sample{want: "9", input: "12\n34\n"}, samples["D1p2"])

	_, err = extractSamples([]byte("package main\nfunc {"))
	assert.Error(t, err)
}

type fakeSolver struct {
	*Puzzle
}

func (fakeSolver) D3p2() any    { return 2 }
func (fakeSolver) D3p1() any    { return 1 }
func (fakeSolver) D12p1() any   { return 12 }
func (fakeSolver) Helper() any  { return nil }
func (fakeSolver) D4p1() string { return "" }

func TestExtractMethods(t *testing.T) {
	_, err := extractMethods(&fakeSolver{})
	require.Error(t, err, "D4p1 has the wrong signature")

	_, err = extractMethods(fakeSolver{})
	require.Error(t, err, "not a pointer")
}

type goodSolver struct {
	*Puzzle
}

func (goodSolver) D3p2() any  { return 2 }
func (goodSolver) D3p1() any  { return 1 }
func (goodSolver) D12p1() any { return 12 }

func TestExtractMethodsOrder(t *testing.T) {
	days, err := extractMethods(&goodSolver{})
	require.NoError(t, err)
	require.Len(t, days, 2)

	d3 := days[3]
	require.Len(t, d3.parts, 2)
	assert.Equal(t, "1", d3.parts[0].Part)
	assert.Equal(t, "2", d3.parts[1].Part)
	assert.Equal(t, 1, d3.parts[0].fn())
	assert.Equal(t, "D12p1", days[12].parts[0].Name)
}

func TestPuzzleDebugf(t *testing.T) {
	var buf bytes.Buffer
	p := &Puzzle{logger: log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})}

	p.Debugf("route of %d moves", 5)
	assert.Contains(t, buf.String(), "route of 5 moves")
	assert.Contains(t, buf.String(), "sample=false")

	buf.Reset()
	p.SampleMode = true
	p.Debugf("route of %d moves", 3)
	assert.Contains(t, buf.String(), "route of 3 moves")
	assert.Contains(t, buf.String(), "sample=true")

	buf.Reset()
	p.logger.SetLevel(log.InfoLevel)
	p.Debugf("hidden")
	assert.Empty(t, buf.String())
}
