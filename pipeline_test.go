package automaton

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Convert(t *testing.T) {
	var stages []Stage
	var states []int
	p := NewPipeline(WithHooks(Hooks{
		OnStage: func(e StageEvent) {
			stages = append(stages, e.Stage)
			states = append(states, e.Automaton.NumStates())
			assert.GreaterOrEqual(t, e.Elapsed.Nanoseconds(), int64(0))
		},
	}))

	res, err := p.Convert(twinGrammar)
	require.NoError(t, err)

	assert.Equal(t, []Stage{StageNFA, StageDFA, StageMinimal}, stages)
	assert.Equal(t, []int{4, 4, 3}, states)
	assert.Same(t, res.NFA, res.Stage(StageNFA))
	assert.Same(t, res.DFA, res.Stage(StageDFA))
	assert.Same(t, res.Minimal, res.Stage(StageMinimal))
	assert.Nil(t, res.Stage("unknown"))
}

func TestPipeline_InvalidGrammar(t *testing.T) {
	var called bool
	p := NewPipeline(WithHooks(Hooks{OnStage: func(StageEvent) { called = true }}))

	res, err := p.Convert(nil)
	assert.ErrorIs(t, err, ErrInvalidGrammar)
	assert.Nil(t, res)
	assert.False(t, called)
}

func TestPipeline_SkipIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var skipped []string
	p := NewPipeline(
		WithLogger(logger),
		WithAuxiliaryState("END"),
		WithHooks(Hooks{OnSkip: func(head, alt string) { skipped = append(skipped, alt) }}),
	)

	res, err := p.Convert([]Rule{{Head: "S", Alternatives: []string{"<X>", "a"}}})
	require.NoError(t, err)

	assert.Equal(t, []string{"<X>"}, skipped)
	assert.Equal(t, []string{"END"}, res.Minimal.Finals())
	assert.Contains(t, buf.String(), "skipping unparseable alternative")
	assert.Contains(t, buf.String(), "stage=min")
}

func TestParseStage(t *testing.T) {
	for in, want := range map[string]Stage{"": StageMinimal, "min": StageMinimal, "nfa": StageNFA, "dfa": StageDFA} {
		got, err := ParseStage(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStage("minimal")
	assert.Error(t, err)
}
