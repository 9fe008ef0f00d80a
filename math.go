package aoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ErrNotDigit is returned when a rune outside '0'-'9' is parsed as a digit.
var ErrNotDigit = errors.New("aoc: not a digit")

// Digits returns the individual digits of the string.
func Digits(line string) ([]int, error) {
	in := make([]int, 0, len(line))
	for i, c := range line {
		d, err := Digit(c)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		in = append(in, d)
	}
	return in, nil
}

// Digit returns the digit value of the rune.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: %q", ErrNotDigit, r)
	}
	return int(r - '0'), nil
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Parallel calls f on every element of in, each on its own goroutine, and
// returns the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}
