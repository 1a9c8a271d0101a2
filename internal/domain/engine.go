package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cloak.dev/pkg/cloak/internal/adapter"
	"cloak.dev/pkg/cloak/internal/controller"
	m "cloak.dev/pkg/cloak/internal/model"
)

// platformPrefixes name packages provided by the runtime rather than by the
// input or its libraries.
var platformPrefixes = []string{"java/", "javax/", "jdk/", "sun/"}

// ObfuscateArgs contains the arguments for one obfuscation run.
type ObfuscateArgs struct {
	Input  m.Path
	Output m.Path
	// Mapping, when set, receives the rename mapping of the run.
	Mapping m.Path
	Policy  m.Policy
	Threads int
}

// InspectArgs contains the arguments for listing the units of a container.
type InspectArgs struct {
	Input   m.Path
	Policy  m.Policy
	Threads int
}

// Engine runs the obfuscation workflow end to end.
type Engine interface {
	// Obfuscate reads Input, applies the configured transformers and writes
	// the result to Output. Output is only written when every step succeeds.
	Obfuscate(ctx context.Context, args ObfuscateArgs) (m.RunSummary, error)
	// Inspect lists the units of Input along with the transformers that
	// would touch each of them.
	Inspect(ctx context.Context, args InspectArgs) ([]m.UnitReport, error)
}

type engine struct {
	adapter.ArchiveAdapter
	adapter.ClassPathAdapter
	adapter.Codec
	adapter.MappingStore
	controller.UI

	transformers []Transformer
	newRunID     func() string
	now          func() time.Time
}

// EngineOption customizes an Engine.
type EngineOption func(*engine)

// WithRunIDSource replaces the run identifier generator.
func WithRunIDSource(source func() string) EngineOption {
	return func(e *engine) {
		e.newRunID = source
	}
}

// NewEngine creates a new Engine instance with the provided dependencies.
func NewEngine(
	archives adapter.ArchiveAdapter,
	classPath adapter.ClassPathAdapter,
	codec adapter.Codec,
	mappings adapter.MappingStore,
	ui controller.UI,
	transformers []Transformer,
	options ...EngineOption,
) Engine {
	e := &engine{
		ArchiveAdapter:   archives,
		ClassPathAdapter: classPath,
		Codec:            codec,
		MappingStore:     mappings,
		UI:               ui,
		transformers:     transformers,
		newRunID:         uuid.NewString,
		now:              time.Now,
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// Obfuscate implements Engine.
func (e *engine) Obfuscate(ctx context.Context, args ObfuscateArgs) (m.RunSummary, error) {
	started := e.now()
	runID := e.newRunID()
	logger := slog.With("run", runID)

	summary := m.RunSummary{RunID: runID, Input: args.Input, Output: args.Output}

	if err := e.Start(ctx); err != nil {
		logger.Error("Failed to start UI", "error", err)
		return summary, err
	}
	defer e.Close(ctx)

	archive, image, err := e.load(ctx, logger, args.Input, args.Threads)
	if err != nil {
		return summary, err
	}

	summary.Units = len(image)
	summary.Resources = len(archive.Resources)

	classPath, err := e.Resolve(ctx, args.Policy.Libraries, adapter.IsUnitEntry(e.Codec))
	if err != nil {
		logger.Error("Failed to resolve libraries", "error", err)
		return summary, fmt.Errorf("failed to resolve libraries: %w", err)
	}

	summary.Libraries = len(classPath.Libraries())

	hierarchy := BuildHierarchy(image)
	warnUnresolved(logger, image, classPath)

	tc := NewContext(hierarchy, e.Codec, WithRunID(runID), WithNamer(reservedNamer(image)))
	pipeline := NewPipeline(OrderTransformers(e.transformers, args.Policy), WithObserver(e.UI))

	applied, err := pipeline.Run(ctx, image, args.Policy, tc)
	summary.Applied = applied

	if err != nil {
		return summary, err
	}

	units, err := e.encodeUnits(ctx, image, archive.Units, args.Threads)
	if err != nil {
		logger.Error("Failed to encode units", "error", err)
		return summary, err
	}

	output, err := e.Stage(ctx, args.Output, adapter.Archive{Units: units, Resources: archive.Resources})
	if err != nil {
		logger.Error("Failed to write output", "path", args.Output, "error", err)
		return summary, fmt.Errorf("failed to write output: %w", err)
	}
	defer output.Discard()

	var mapping adapter.Staged

	if args.Mapping != "" {
		mapping, err = e.StageMapping(args.Mapping, mappingRecords(tc))
		if err != nil {
			logger.Error("Failed to save mapping", "path", args.Mapping, "error", err)
			return summary, err
		}
		defer mapping.Discard()
	}

	// Mapping commits first so an output never lands without its mapping.
	if mapping != nil {
		if err := mapping.Commit(); err != nil {
			logger.Error("Failed to save mapping", "path", args.Mapping, "error", err)
			return summary, fmt.Errorf("failed to save mapping to %s: %w", args.Mapping, err)
		}

		summary.Mapping = args.Mapping
	}

	if err := output.Commit(); err != nil {
		logger.Error("Failed to write output", "path", args.Output, "error", err)
		return summary, fmt.Errorf("failed to write output: %w", err)
	}

	summary.Units = len(image)
	summary.RenamedFields = tc.FieldMapping().Len()
	summary.RenamedMethods = tc.MethodMapping().Len()
	summary.EncryptedStrings = tc.Encrypted()

	if decoder := tc.Decoder(); decoder != nil {
		summary.DecoderUnit = decoder.Name
	}

	summary.Duration = e.now().Sub(started)

	logger.Info("obfuscation finished",
		"units", summary.Units,
		"fields", summary.RenamedFields,
		"methods", summary.RenamedMethods,
		"strings", summary.EncryptedStrings,
		"duration", summary.Duration)

	return summary, nil
}

// Inspect implements Engine.
func (e *engine) Inspect(ctx context.Context, args InspectArgs) ([]m.UnitReport, error) {
	_, image, err := e.load(ctx, slog.Default(), args.Input, args.Threads)
	if err != nil {
		return nil, err
	}

	ordered := OrderTransformers(e.transformers, args.Policy)
	reports := make([]m.UnitReport, 0, len(image))

	for _, unit := range image.Sorted() {
		report := m.UnitReport{
			Name:           unit.Name,
			Super:          unit.Super,
			Fields:         len(unit.Fields),
			Methods:        len(unit.Methods),
			StringLiterals: countStringLiterals(unit),
		}

		for _, transformer := range ordered {
			name := transformer.Name()
			if args.Policy.Enabled(name) && Eligible(unit.Name, name, args.Policy) {
				report.Transformers = append(report.Transformers, name)
			}
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func mappingRecords(tc *Context) []m.MappingRecord {
	fields := tc.FieldMapping().Entries()
	methods := tc.MethodMapping().Entries()

	records := make([]m.MappingRecord, 0, len(fields)+len(methods))

	for _, entry := range fields {
		records = append(records, mappingRecord(m.MappingField, entry))
	}

	for _, entry := range methods {
		records = append(records, mappingRecord(m.MappingMethod, entry))
	}

	return records
}

func mappingRecord(kind string, entry MappingEntry) m.MappingRecord {
	return m.MappingRecord{
		Kind:       kind,
		Owner:      entry.Key.Owner,
		Name:       entry.Key.Name,
		Descriptor: entry.Key.Descriptor,
		NewName:    entry.NewName,
	}
}

func (e *engine) load(ctx context.Context, logger *slog.Logger, input m.Path, threads int) (adapter.Archive, m.Image, error) {
	archive, err := e.Read(ctx, input, adapter.IsUnitEntry(e.Codec))
	if err != nil {
		logger.Error("Failed to read input", "path", input, "error", err)
		return adapter.Archive{}, nil, fmt.Errorf("failed to read input: %w", err)
	}

	image, err := e.decodeUnits(ctx, logger, archive.Units, threads)
	if err != nil {
		logger.Error("Failed to decode units", "path", input, "error", err)
		return adapter.Archive{}, nil, err
	}

	if len(image) == 0 {
		return adapter.Archive{}, nil, fmt.Errorf("%w: %s", ErrNoUnits, input)
	}

	return archive, image, nil
}

func (e *engine) decodeUnits(ctx context.Context, logger *slog.Logger, entries []adapter.Entry, threads int) (m.Image, error) {
	units := make([]*m.Unit, len(entries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(threads, 1))

	for i, entry := range entries {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			unit, err := e.Decode(entry.Data)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", entry.Name, err)
			}

			if want := strings.TrimSuffix(entry.Name, e.Suffix()); unit.Name != want {
				logger.Warn("unit name does not match its entry", "entry", entry.Name, "unit", unit.Name)
			}

			units[i] = unit

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	image := make(m.Image, len(units))
	for i, unit := range units {
		if !image.Add(unit) {
			return nil, fmt.Errorf("duplicate unit %s in entry %s", unit.Name, entries[i].Name)
		}
	}

	return image, nil
}

func (e *engine) encodeUnits(ctx context.Context, image m.Image, originals []adapter.Entry, threads int) ([]adapter.Entry, error) {
	previous := make(map[string]adapter.Entry, len(originals))
	for _, entry := range originals {
		previous[entry.Name] = entry
	}

	units := image.Sorted()
	entries := make([]adapter.Entry, len(units))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(threads, 1))

	for i, unit := range units {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			data, err := e.Encode(unit)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", unit.Name, err)
			}

			name := adapter.EntryName(e.Codec, unit.Name)
			entry := adapter.Entry{Name: name, Data: data}

			if original, ok := previous[name]; ok {
				entry.Method = original.Method
				entry.Modified = original.Modified
			}

			entries[i] = entry

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

// reservedNamer returns a Namer that never hands out a name already used by
// a unit or member of the image.
func reservedNamer(image m.Image) *Namer {
	namer := NewNamer()

	for _, unit := range image {
		namer.Reserve(unit.Name)

		for _, field := range unit.Fields {
			namer.Reserve(field.Name)
		}

		for _, method := range unit.Methods {
			namer.Reserve(method.Name)
		}
	}

	return namer
}

// warnUnresolved logs every supertype found neither in the image nor on the
// class path. Such units still take part in the run; override detection
// simply stops at the missing link.
func warnUnresolved(logger *slog.Logger, image m.Image, classPath *adapter.ClassPath) {
	missing := make(map[string][]string)

	for _, unit := range image {
		if !unit.HasSuper() || isPlatformUnit(unit.Super) {
			continue
		}

		if _, ok := image[unit.Super]; ok {
			continue
		}

		if library, ok := classPath.Provider(unit.Super); ok {
			logger.Debug("supertype resolved from library", "super", unit.Super, "library", library)
			continue
		}

		missing[unit.Super] = append(missing[unit.Super], unit.Name)
	}

	supers := make([]string, 0, len(missing))
	for super := range missing {
		supers = append(supers, super)
	}

	sort.Strings(supers)

	for _, super := range supers {
		subtypes := missing[super]
		sort.Strings(subtypes)
		logger.Warn("supertype not found in input or libraries", "super", super, "subtypes", subtypes)
	}
}

func isPlatformUnit(name string) bool {
	for _, prefix := range platformPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}

func countStringLiterals(unit *m.Unit) int {
	count := 0

	for _, method := range unit.Methods {
		for _, insn := range method.Instructions {
			if _, ok := insn.StringConstant(); ok {
				count++
			}
		}
	}

	return count
}
