// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: grids, directions, queues, graphs and a runner that checks every
// part against the sample embedded in its doc comment.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

// extractSamples maps each function name in src to the sample found in its
// doc comment. A sample without input reuses the previous function's input.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			if s.input == "" {
				s.input = lastInput
			}
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples, nil
}

// Puzzle is handed to solvers through an embedded *Puzzle field.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	logger  *log.Logger

	inputOnce sync.Once
	input     []byte
}

// Input returns the sample input in sample mode, the real input otherwise.
// The real input is read from -input when set, else from a local cache that
// is filled from adventofcode.com on first use.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	p.inputOnce.Do(func() {
		var err error
		if flagInput != "" {
			p.input, err = os.ReadFile(flagInput)
		} else {
			p.input, err = fileOrFetch(
				fmt.Sprintf("%d/%d.input", p.year, p.day.day),
				fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day),
			)
		}
		if err != nil {
			p.logger.Fatal("loading input", "day", p.day.day, "err", err)
		}
	})
	return p.input
}

// Logger returns the runner's logger, scoped to the current day.
func (p *Puzzle) Logger() *log.Logger {
	return p.logger
}

// Debugf logs at debug level, tagged with whether the sample is running.
func (p *Puzzle) Debugf(format string, args ...any) {
	p.logger.With("sample", p.SampleMode).Debugf(format, args...)
}

// Fatal logs err against the running part and exits.
func (p *Puzzle) Fatal(err error) {
	p.logger.Fatal("solve failed", "part", p.solver.Part, "sample", p.SampleMode, "err", err)
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		p.logger.Fatal("no sample found", "solver", p.solver.Name)
	}
	return s
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods named D{day}p{part} on the struct
// pointed to by x. Each must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	vt := v.Elem().Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Elem().Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("register: %s has signature %v; want func() any", mn, vt.Method(i).Type)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInput      string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "read the real input from this file")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay runs every selected part of d. It reports false when a part
// disagrees with its sample.
func runDay(slvr any, logger *log.Logger, year int, d day, samples map[string]sample) bool {
	p := &Puzzle{
		year:    year,
		day:     d,
		samples: samples,
		logger:  logger.With("day", d.day),
	}
	p.logger.Info("running")
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.solver = ps
		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so its load time is not counted.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v)\n", ps.Part, got, took)
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, want)
				return false
			}
			fmt.Printf("part %s sample: %v ✅ (%v)\n", ps.Part, got, took)
		}
	}
	return true
}

// Run registers the D{day}p{part} methods of slvr, whose struct must embed
// *Puzzle, and runs them. src is the solver's own source; it is scanned for
// want= samples.
func Run(year int, src []byte, slvr any) {
	initFlags()
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: fmt.Sprint("aoc ", year)})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	samples, err := extractSamples(src)
	if err != nil {
		logger.Fatal("reading samples", "err", err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		logger.Fatal("registering solver", "err", err)
	}

	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			logger.Fatal("no such day", "day", flagCurDay)
		}
		if !runDay(slvr, logger, year, d, samples) {
			os.Exit(1)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	ok := true
	for _, d := range dayNums {
		ok = runDay(slvr, logger, year, days[d], samples) && ok
		fmt.Println()
	}
	if !ok {
		os.Exit(1)
	}
}

var session = sync.OnceValues(func() (string, error) {
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	return strings.TrimSpace(string(b)), err
})

func fileOrFetch(filename, url string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}
	body, err := fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func fetch(url string) ([]byte, error) {
	cookie, err := session()
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
