package domain

import (
	"log/slog"
	"sync"
	"sync/atomic"

	m "cloak.dev/pkg/cloak/internal/model"
)

// UnitEncoder renders a unit into its container form. Generated units are
// encoded through it before they join the image, so malformed code fails the
// transformer that produced it.
type UnitEncoder interface {
	Encode(unit *m.Unit) ([]byte, error)
}

// Context is the state shared by every transformer of one pipeline run.
// A fresh Context is created per run; nothing here is process-wide.
type Context struct {
	runID     string
	logger    *slog.Logger
	hierarchy *Hierarchy
	namer     *Namer
	encoder   UnitEncoder

	fields  *RenameMapping
	methods *RenameMapping

	mu               sync.RWMutex
	protectedFields  map[string]nameSet
	protectedMethods map[string]nameSet

	decoderOnce sync.Once
	decoder     *m.Unit
	decoderErr  error
	encrypted   atomic.Int64
}

// ContextOption customizes a Context.
type ContextOption func(*Context)

// WithRunID tags the context, and its logger, with a run identifier.
func WithRunID(runID string) ContextOption {
	return func(c *Context) {
		c.runID = runID
	}
}

// WithNamer replaces the default identifier generator.
func WithNamer(namer *Namer) ContextOption {
	return func(c *Context) {
		c.namer = namer
	}
}

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *Context) {
		c.logger = logger
	}
}

// NewContext creates the run state over a finalized hierarchy.
func NewContext(hierarchy *Hierarchy, encoder UnitEncoder, options ...ContextOption) *Context {
	c := &Context{
		logger:           slog.Default(),
		hierarchy:        hierarchy,
		encoder:          encoder,
		fields:           NewRenameMapping(),
		methods:          NewRenameMapping(),
		protectedFields:  make(map[string]nameSet),
		protectedMethods: make(map[string]nameSet),
	}

	for _, option := range options {
		option(c)
	}

	if c.namer == nil {
		c.namer = NewNamer()
	}

	if c.runID != "" {
		c.logger = c.logger.With("run", c.runID)
	}

	return c
}

// RunID returns the run identifier, if any.
func (c *Context) RunID() string { return c.runID }

// Logger returns the run-scoped logger.
func (c *Context) Logger() *slog.Logger { return c.logger }

// Hierarchy returns the inheritance graph of the image.
func (c *Context) Hierarchy() *Hierarchy { return c.hierarchy }

// Namer returns the run's identifier generator.
func (c *Context) Namer() *Namer { return c.namer }

// Encoder returns the codec capability for generated units.
func (c *Context) Encoder() UnitEncoder { return c.encoder }

// FieldMapping returns the field renames recorded so far.
func (c *Context) FieldMapping() *RenameMapping { return c.fields }

// MethodMapping returns the method renames recorded so far.
func (c *Context) MethodMapping() *RenameMapping { return c.methods }

// ProtectField marks a field name of a unit as one that must keep its name.
func (c *Context) ProtectField(unit, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	protect(c.protectedFields, unit, name)
}

// ProtectMethod marks a method name of a unit as one that must keep its name.
func (c *Context) ProtectMethod(unit, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	protect(c.protectedMethods, unit, name)
}

// IsFieldProtected reports whether a field must keep its name.
func (c *Context) IsFieldProtected(unit, name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.protectedFields[unit][name]

	return ok
}

// IsMethodProtected reports whether a method must keep its name.
func (c *Context) IsMethodProtected(unit, name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.protectedMethods[unit][name]

	return ok
}

// InjectDecoder runs build at most once per run and returns the unit it
// produced, reporting whether this call was the one that built it. Later
// calls return the first outcome without calling build again.
func (c *Context) InjectDecoder(build func() (*m.Unit, error)) (*m.Unit, bool, error) {
	injected := false

	c.decoderOnce.Do(func() {
		unit, err := build()

		c.mu.Lock()
		c.decoder, c.decoderErr = unit, err
		c.mu.Unlock()

		injected = err == nil
	})

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.decoder, injected, c.decoderErr
}

// Decoder returns the injected decoder unit, or nil.
func (c *Context) Decoder() *m.Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.decoder
}

// AddEncrypted counts encrypted literals.
func (c *Context) AddEncrypted(n int) {
	c.encrypted.Add(int64(n))
}

// Encrypted returns the number of literals encrypted so far.
func (c *Context) Encrypted() int {
	return int(c.encrypted.Load())
}

func protect(sets map[string]nameSet, unit, name string) {
	names, ok := sets[unit]
	if !ok {
		names = make(nameSet)
		sets[unit] = names
	}

	names[name] = struct{}{}
}
