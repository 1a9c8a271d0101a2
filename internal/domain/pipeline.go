package domain

import (
	"context"
	"sort"

	m "cloak.dev/pkg/cloak/internal/model"
)

// Transformer rewrites the program image in place.
type Transformer interface {
	Name() string
	Transform(ctx context.Context, image m.Image, policy m.Policy, tc *Context) error
}

// Observer is notified as the pipeline moves through its transformers.
type Observer interface {
	TransformerStarted(name string)
	TransformerFinished(name string, err error)
}

// Pipeline applies an ordered list of transformers to a program image.
type Pipeline struct {
	transformers []Transformer
	observer     Observer
}

// PipelineOption customizes a Pipeline.
type PipelineOption func(*Pipeline)

// WithObserver registers a progress observer.
func WithObserver(observer Observer) PipelineOption {
	return func(p *Pipeline) {
		p.observer = observer
	}
}

// NewPipeline creates a pipeline running transformers in the given order.
func NewPipeline(transformers []Transformer, options ...PipelineOption) *Pipeline {
	p := &Pipeline{transformers: transformers}

	for _, option := range options {
		option(p)
	}

	return p
}

// Transformers returns the pipeline's transformers in run order.
func (p *Pipeline) Transformers() []Transformer {
	return p.transformers
}

// Run applies every enabled transformer, one at a time and to completion, in
// order. The first failure stops the run and is returned as a *TransformError;
// the remaining transformers are not attempted.
func (p *Pipeline) Run(ctx context.Context, image m.Image, policy m.Policy, tc *Context) ([]string, error) {
	applied := make([]string, 0, len(p.transformers))

	for _, transformer := range p.transformers {
		name := transformer.Name()
		if !policy.Enabled(name) {
			tc.Logger().Debug("transformer disabled", "transformer", name)
			continue
		}

		if err := ctx.Err(); err != nil {
			return applied, err
		}

		tc.Logger().Info("applying transformer", "transformer", name, "units", len(image))
		p.notifyStarted(name)

		if err := transformer.Transform(ctx, image, policy, tc); err != nil {
			tc.Logger().Error("transformer failed", "transformer", name, "error", err)

			p.notifyFinished(name, err)

			return applied, &TransformError{Transformer: name, Err: err}
		}

		p.notifyFinished(name, nil)

		applied = append(applied, name)
	}

	return applied, nil
}

func (p *Pipeline) notifyStarted(name string) {
	if p.observer != nil {
		p.observer.TransformerStarted(name)
	}
}

func (p *Pipeline) notifyFinished(name string, err error) {
	if p.observer != nil {
		p.observer.TransformerFinished(name, err)
	}
}

// OrderTransformers returns transformers sorted by their configured order.
// Transformers with equal order keep their relative position.
func OrderTransformers(transformers []Transformer, policy m.Policy) []Transformer {
	ordered := make([]Transformer, len(transformers))
	copy(ordered, transformers)

	sort.SliceStable(ordered, func(i, j int) bool {
		return policy.Transformer(ordered[i].Name()).Order < policy.Transformer(ordered[j].Name()).Order
	})

	return ordered
}
