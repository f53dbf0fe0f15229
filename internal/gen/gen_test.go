package gen

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqrecon/internal/judge"
)

func TestGenerate_Deterministic(t *testing.T) {
	p := Params{Cases: 5, MaxN: 8, MaxValue: 20, Seed: 1234}

	var a, b bytes.Buffer
	seed, err := Generate(&a, p)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), seed)
	_, err = Generate(&b, p)
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
}

func TestGenerate_Solvable(t *testing.T) {
	var in bytes.Buffer
	_, err := Generate(&in, Params{Cases: 40, MaxN: 12, MaxValue: 6, Seed: 99})
	require.NoError(t, err)
	raw := in.String()

	var out bytes.Buffer
	stats, err := judge.Run(context.Background(), bytes.NewBufferString(raw), &out, judge.Options{})
	require.NoError(t, err)
	assert.Equal(t, 40, stats.Cases)

	report, err := judge.Check(bytes.NewBufferString(raw), &out)
	require.NoError(t, err)
	assert.True(t, report.OK(), "failures: %v", report.Failures)
}

func TestGenerate_FreshSeed(t *testing.T) {
	var buf bytes.Buffer
	seed, err := Generate(&buf, Params{Cases: 1, MaxN: 3, MaxValue: 10})
	require.NoError(t, err)
	assert.NotZero(t, seed)
}

func TestGenerate_RedrawsZeroSeed(t *testing.T) {
	draws := []int64{0, 0, 41}
	orig := newSeed
	newSeed = func() (int64, error) {
		v := draws[0]
		draws = draws[1:]
		return v, nil
	}
	t.Cleanup(func() { newSeed = orig })

	var drawn, replay bytes.Buffer
	seed, err := Generate(&drawn, Params{Cases: 3, MaxN: 5, MaxValue: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(41), seed)
	assert.Empty(t, draws)

	_, err = Generate(&replay, Params{Cases: 3, MaxN: 5, MaxValue: 9, Seed: seed})
	require.NoError(t, err)
	assert.Equal(t, drawn.String(), replay.String())
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"negative cases", Params{Cases: -1, MaxN: 1, MaxValue: 1}},
		{"zero max-n", Params{Cases: 1, MaxN: 0, MaxValue: 1}},
		{"zero max-value", Params{Cases: 1, MaxN: 1, MaxValue: 0}},
		{"max-value at sentinel", Params{Cases: 1, MaxN: 1, MaxValue: 1_000_000_000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.p.Validate())
		})
	}
	assert.NoError(t, Params{Cases: 0, MaxN: 1, MaxValue: 1}.Validate())
}
