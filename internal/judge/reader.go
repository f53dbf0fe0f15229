// Package judge reads judge-format test cases, runs the reconstructor over
// them and writes answers in the format the grader expects.
//
// Input is a whitespace-delimited token stream: T, then for each case n
// followed by n(n-1)/2 integers. Output is one line per case.
package judge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"seqrecon/internal/reconstruct"
)

const maxTokenSize = 1 << 20

// Case is one parsed test case.
type Case struct {
	Index int // 1-based position in the input
	N     int
	Sums  []int64
}

// Reader tokenizes judge input.
type Reader struct {
	scanner *bufio.Scanner
	tokens  int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), maxTokenSize)
	s.Split(bufio.ScanWords)
	return &Reader{scanner: s}
}

// Int reads the next token as an integer.
func (r *Reader) Int() (int64, error) {
	if !r.scanner.Scan() {
		if err := r.scanErr(); err != nil {
			return 0, err
		}
		return 0, reconstruct.Invalidf("unexpected end of input after %d tokens", r.tokens)
	}
	r.tokens++
	tok := r.scanner.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, reconstruct.Invalidf("token %d: %q is not an integer", r.tokens, tok)
	}
	return v, nil
}

// End fails if any token remains after what has been read.
func (r *Reader) End(after string) error {
	if r.scanner.Scan() {
		return reconstruct.Invalidf("unexpected token %q after %s", r.scanner.Text(), after)
	}
	return r.scanErr()
}

func (r *Reader) scanErr() error {
	err := r.scanner.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return reconstruct.Invalidf("token %d is longer than %d bytes", r.tokens+1, maxTokenSize)
	default:
		return fmt.Errorf("failed to read token %d: %w", r.tokens+1, err)
	}
}

// count reads a non-negative integer used as a length.
func (r *Reader) count(what string) (int, error) {
	v, err := r.Int()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, reconstruct.Invalidf("%s %d is negative", what, v)
	}
	if v > maxCount {
		return 0, reconstruct.Invalidf("%s %d is too large", what, v)
	}
	return int(v), nil
}

// maxCount bounds T and n so that n(n-1)/2 stays well inside int.
const maxCount = 1 << 24

// Case reads one test case.
func (r *Reader) Case(index int) (Case, error) {
	n, err := r.count("sequence length")
	if err != nil {
		return Case{}, err
	}
	if n < 1 {
		return Case{}, reconstruct.Invalidf("sequence length %d, must be at least 1", n)
	}
	m := reconstruct.PairCount(n)
	sums := make([]int64, 0, min(m, maxPrealloc))
	for i := 0; i < m; i++ {
		v, err := r.Int()
		if err != nil {
			return Case{}, err
		}
		sums = append(sums, v)
	}
	return Case{Index: index, N: n, Sums: sums}, nil
}

// maxPrealloc caps the up-front allocation for a declared but unverified length.
const maxPrealloc = 1 << 16

// ReadCases reads the case count followed by every case.
func ReadCases(in io.Reader) ([]Case, error) {
	r := NewReader(in)
	t, err := r.count("case count")
	if err != nil {
		return nil, fmt.Errorf("failed to read case count: %w", err)
	}
	cases := make([]Case, 0, min(t, maxPrealloc))
	for i := 1; i <= t; i++ {
		c, err := r.Case(i)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		cases = append(cases, c)
	}
	if err := r.End(fmt.Sprintf("case %d", t)); err != nil {
		return nil, err
	}
	return cases, nil
}

// ReadAnswers reads len(cases) answer lines, each holding cases[i].N values.
func ReadAnswers(in io.Reader, cases []Case) ([][]int64, error) {
	r := NewReader(in)
	answers := make([][]int64, len(cases))
	for i, c := range cases {
		vals := make([]int64, c.N)
		for j := range vals {
			v, err := r.Int()
			if err != nil {
				return nil, fmt.Errorf("answer %d: %w", c.Index, err)
			}
			vals[j] = v
		}
		answers[i] = vals
	}
	if err := r.End(fmt.Sprintf("answer %d", len(cases))); err != nil {
		return nil, err
	}
	return answers, nil
}
