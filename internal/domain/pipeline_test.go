package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cloak.dev/pkg/cloak/internal/model"
)

type stubTransformer struct {
	name  string
	err   error
	calls int
	apply func(image m.Image, tc *Context)
}

func (s *stubTransformer) Name() string { return s.name }

func (s *stubTransformer) Transform(_ context.Context, image m.Image, _ m.Policy, tc *Context) error {
	s.calls++

	if s.apply != nil {
		s.apply(image, tc)
	}

	return s.err
}

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) TransformerStarted(name string) {
	r.events = append(r.events, "start:"+name)
}

func (r *recordingObserver) TransformerFinished(name string, err error) {
	if err != nil {
		r.events = append(r.events, "fail:"+name+":"+err.Error())
		return
	}

	r.events = append(r.events, "done:"+name)
}

func enabledPolicy(names ...string) m.Policy {
	policy := m.Policy{Transformers: make(map[string]m.TransformerPolicy)}
	for i, name := range names {
		policy.Transformers[name] = m.TransformerPolicy{Enabled: true, Order: i}
	}

	return policy
}

func TestPipeline_SkipsDisabled(t *testing.T) {
	first := &stubTransformer{name: "first"}
	disabled := &stubTransformer{name: "disabled"}
	last := &stubTransformer{name: "last"}

	observer := &recordingObserver{}
	pipeline := NewPipeline([]Transformer{first, disabled, last}, WithObserver(observer))

	applied, err := pipeline.Run(context.Background(), m.NewImage(), enabledPolicy("first", "last"), NewContext(NewHierarchy(), nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "last"}, applied)
	assert.Zero(t, disabled.calls)
	assert.Equal(t, []string{"start:first", "done:first", "start:last", "done:last"}, observer.events)
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	first := &stubTransformer{name: "first"}
	failing := &stubTransformer{name: "failing", err: boom}
	last := &stubTransformer{name: "last"}

	observer := &recordingObserver{}
	pipeline := NewPipeline([]Transformer{first, failing, last}, WithObserver(observer))

	applied, err := pipeline.Run(context.Background(), m.NewImage(), enabledPolicy("first", "failing", "last"), NewContext(NewHierarchy(), nil))
	require.Error(t, err)

	var transformErr *TransformError
	require.ErrorAs(t, err, &transformErr)
	assert.Equal(t, "failing", transformErr.Transformer)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "transformer failing failed: boom", err.Error())

	assert.Equal(t, []string{"first"}, applied)
	assert.Zero(t, last.calls)
	assert.Equal(t, []string{"start:first", "done:first", "start:failing", "fail:failing:boom"}, observer.events)
}

func TestPipeline_CancelledContext(t *testing.T) {
	first := &stubTransformer{name: "first"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPipeline([]Transformer{first}).Run(ctx, m.NewImage(), enabledPolicy("first"), NewContext(NewHierarchy(), nil))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, first.calls)
}

func TestOrderTransformers(t *testing.T) {
	a := &stubTransformer{name: "a"}
	b := &stubTransformer{name: "b"}
	c := &stubTransformer{name: "c"}
	d := &stubTransformer{name: "d"}

	policy := m.Policy{Transformers: map[string]m.TransformerPolicy{
		"a": {Order: 2},
		"b": {Order: 1},
		"c": {Order: 2},
		"d": {Order: 0},
	}}

	input := []Transformer{a, b, c, d}
	ordered := OrderTransformers(input, policy)

	names := make([]string, 0, len(ordered))
	for _, transformer := range ordered {
		names = append(names, transformer.Name())
	}

	assert.Equal(t, []string{"d", "b", "a", "c"}, names)
	assert.Equal(t, "a", input[0].Name())
}
