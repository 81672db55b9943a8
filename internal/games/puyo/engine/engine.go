package engine

import (
	"math/rand"
	"time"
)

// Engine owns a single session and applies actions to it in arrival order.
// It is not safe for concurrent use; callers serialize Dispatch.
type Engine struct {
	env       Env
	state     Session
	listeners []func(Event)
}

// Option configures an Engine.
type Option func(*Engine)

// WithHighScores seeds the persisted high-score list.
func WithHighScores(hs []HighScore) Option {
	return func(e *Engine) {
		e.state.HighScores = hs
	}
}

// WithSettings seeds the persisted settings record.
func WithSettings(s Settings) Option {
	return func(e *Engine) {
		e.state.Settings = s
	}
}

// WithClock sets the time source used to stamp high-score entries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.env.Now = now
	}
}

// New creates an idle engine.
func New(rules Rules, rng *rand.Rand, opts ...Option) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		env: Env{
			Rules: rules,
			Gen:   NewGenerator(rules, rng),
			Now:   time.Now,
		},
		state: NewSession(rules, nil, DefaultSettings()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules {
	return e.env.Rules
}

// State returns the current session. The returned value must be treated as
// read-only.
func (e *Engine) State() Session {
	return e.state
}

// Subscribe registers a listener. Listeners run synchronously after each
// transition, in registration order, and must not call Dispatch.
func (e *Engine) Subscribe(fn func(Event)) {
	e.listeners = append(e.listeners, fn)
}

// Dispatch applies an action and notifies listeners of the resulting events.
func (e *Engine) Dispatch(a Action) []Event {
	next, events := Reduce(e.env, e.state, a)
	e.state = next
	for _, ev := range events {
		for _, fn := range e.listeners {
			fn(ev)
		}
	}
	return events
}
