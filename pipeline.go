package automaton

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Stage identifies one step of the conversion.
type Stage string

const (
	StageNFA     Stage = "nfa"
	StageDFA     Stage = "dfa"
	StageMinimal Stage = "min"
)

// ParseStage accepts "nfa", "dfa" or "min". The empty string is StageMinimal.
func ParseStage(s string) (Stage, error) {
	switch Stage(s) {
	case "", StageMinimal:
		return StageMinimal, nil
	case StageNFA, StageDFA:
		return Stage(s), nil
	}
	return "", fmt.Errorf("unknown stage %q", s)
}

// StageEvent describes a completed stage.
type StageEvent struct {
	Stage     Stage
	Automaton *Automaton
	Elapsed   time.Duration
}

// Hooks observe a conversion. Nil callbacks are skipped.
type Hooks struct {
	OnStage func(StageEvent)
	OnSkip  func(head, alternative string)
}

// Result holds the automaton produced by each stage. The three are independent values.
type Result struct {
	NFA     *Automaton
	DFA     *Automaton
	Minimal *Automaton
}

// Stage returns the automaton produced by stage s, or nil for an unknown stage.
func (r *Result) Stage(s Stage) *Automaton {
	switch s {
	case StageNFA:
		return r.NFA
	case StageDFA:
		return r.DFA
	case StageMinimal:
		return r.Minimal
	}
	return nil
}

// Pipeline runs grammar compilation, determinization and minimization in sequence.
type Pipeline struct {
	logger     *slog.Logger
	finalState string
	hooks      Hooks
}

// Option defines a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithAuxiliaryState names the auxiliary accepting state of the NFA.
func WithAuxiliaryState(name string) Option {
	return func(p *Pipeline) {
		p.finalState = name
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(p *Pipeline) {
		p.hooks = hooks
	}
}

func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		finalState: DefaultFinalState,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Convert runs the three stages over rules. A grammar error stops the run before determinization.
func (p *Pipeline) Convert(rules []Rule) (*Result, error) {
	start := time.Now()
	nfa, err := Compile(rules,
		WithFinalState(p.finalState),
		OnSkip(func(head, alt string) {
			p.logger.Warn("skipping unparseable alternative", "head", head, "alternative", alt)
			if p.hooks.OnSkip != nil {
				p.hooks.OnSkip(head, alt)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("compile grammar: %w", err)
	}
	p.done(StageNFA, nfa, start)

	start = time.Now()
	dfa, err := Determinize(nfa)
	if err != nil {
		return nil, fmt.Errorf("determinize: %w", err)
	}
	p.done(StageDFA, dfa, start)

	start = time.Now()
	minimal := Minimize(dfa)
	p.done(StageMinimal, minimal, start)

	return &Result{NFA: nfa, DFA: dfa, Minimal: minimal}, nil
}

func (p *Pipeline) done(stage Stage, a *Automaton, start time.Time) {
	elapsed := time.Since(start)
	p.logger.Debug("stage complete",
		"stage", string(stage),
		"states", a.NumStates(),
		"transitions", a.NumTransitions(),
		"finals", len(a.Finals()),
		"elapsed", elapsed,
	)
	if p.hooks.OnStage != nil {
		p.hooks.OnStage(StageEvent{Stage: stage, Automaton: a, Elapsed: elapsed})
	}
}
