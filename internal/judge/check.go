package judge

import (
	"fmt"
	"io"

	"seqrecon/internal/reconstruct"
)

// Failure records one rejected answer.
type Failure struct {
	Index int
	Err   error
}

// Report is the outcome of checking an answer file against a case file.
type Report struct {
	Cases    int
	Failures []Failure
}

// OK reports whether every answer was accepted.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Check verifies every answer in answers against the matching case in cases.
// Malformed files are returned as errors; wrong answers are collected in the report.
func Check(cases, answers io.Reader) (Report, error) {
	cs, err := ReadCases(cases)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read cases: %w", err)
	}
	as, err := ReadAnswers(answers, cs)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read answers: %w", err)
	}

	report := Report{Cases: len(cs)}
	for i, c := range cs {
		if err := reconstruct.Verify(c.N, c.Sums, as[i]); err != nil {
			report.Failures = append(report.Failures, Failure{Index: c.Index, Err: err})
		}
	}
	return report, nil
}
