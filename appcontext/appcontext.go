package appcontext

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mcortesi/dinjector/errors"
	"github.com/mcortesi/dinjector/logger"
	"github.com/mcortesi/dinjector/mapping"
	"github.com/mcortesi/dinjector/observability"
	"github.com/mcortesi/dinjector/resolver"
)

// AppContext owns a validated set of mappings and the objects built from them.
type AppContext struct {
	id       string
	store    *mapping.Store
	registry *mapping.Registry
	chain    *resolver.Chain
	log      *logger.Logger
	metrics  *observability.Metrics
	tracer   trace.Tracer

	mutex sync.RWMutex
	cache map[string]any

	// building serializes construction per cached mapping. It is filled
	// once in build and only read afterwards.
	building map[string]*sync.Mutex
}

// New builds an application context. Every definition is preprocessed by
// its mapping type, then validated; finally every declared argument is
// checked against the resolver chain. Any failure aborts and no context is
// returned. No object is created.
//
// Errors carry one of the codes TYPE_NOT_FOUND, INVALID_MAPPING,
// VALIDATION_FAILED or INVALID_ARGUMENTS. Validation problems are reported
// exhaustively: see InvalidResults and InvalidArgumentPairs.
func New(defs *mapping.Definitions, types []mapping.Type, opts ...Option) (*AppContext, error) {
	o := newOptions(opts)
	if defs == nil {
		defs = mapping.NewDefinitions()
	}

	c := &AppContext{
		id:      uuid.NewString(),
		metrics: o.metrics,
		tracer:  o.tracer,
		cache:   make(map[string]any),
	}
	c.log = o.log.WithComponent("appcontext").WithFields(logger.Fields(logger.FieldContextID, c.id))

	ctx, span := observability.StartSpan(context.Background(), c.tracer, observability.SpanBuild,
		attribute.String(observability.AttrContextID, c.id),
		attribute.Int(observability.AttrCount, defs.Len()),
	)
	err := c.build(ctx, defs, types, o.resolvers)
	observability.EndSpan(span, err)

	if err != nil {
		c.metrics.RecordBuild(ctx, "error")
		c.log.Error("failed to build application context", logger.ErrorFields("build", err))
		return nil, err
	}

	c.metrics.RecordBuild(ctx, "ok")
	c.log.Info("application context ready", logger.Fields(
		logger.FieldCount, c.store.Len(),
		logger.FieldType, c.registry.Names(),
	))
	return c, nil
}

func (c *AppContext) build(ctx context.Context, defs *mapping.Definitions, types []mapping.Type, resolvers []resolver.Resolver) error {
	registry, err := mapping.NewRegistry(types...)
	if err != nil {
		return err
	}
	c.registry = registry

	_, span := observability.StartSpan(ctx, c.tracer, observability.SpanPreprocess)
	store, err := mapping.Preprocess(defs, registry)
	observability.EndSpan(span, err)
	if err != nil {
		return err
	}
	c.store = store

	c.building = make(map[string]*sync.Mutex)
	for _, m := range store.All() {
		if m.Cache() {
			c.building[m.Name()] = &sync.Mutex{}
		}
	}

	chain := make([]resolver.Resolver, 0, len(resolvers)+2)
	chain = append(chain, resolvers...)
	chain = append(chain,
		resolver.NewReserved(resolver.ContextKey, c),
		resolver.NewDependency(c.Get, c.Has),
	)
	c.chain = resolver.NewChain(chain...)

	_, span = observability.StartSpan(ctx, c.tracer, observability.SpanValidate)
	err = c.validate()
	observability.EndSpan(span, err)
	return err
}

// validate runs the structural check and then the argument check. The
// first failing check aborts.
func (c *AppContext) validate() error {
	if invalid := c.store.Validate(c.registry); len(invalid) > 0 {
		names := make([]string, len(invalid))
		for i, r := range invalid {
			names[i] = r.Mapping()
			c.log.Debug("invalid mapping", logger.Fields(logger.FieldMapping, r.Mapping(), logger.FieldError, r.Error()))
		}
		return errors.ValidationFailed(names, invalid)
	}

	if failures := c.store.ValidateArguments(c.chain.Validate); len(failures) > 0 {
		for _, f := range failures {
			c.log.Debug("unresolvable argument", logger.Fields(logger.FieldMapping, f.Mapping, logger.FieldArgument, f.Argument))
		}
		return errors.InvalidArguments(failures)
	}
	return nil
}

// ID returns the random identifier tagging this context's logs and spans.
func (c *AppContext) ID() string {
	return c.id
}

// Get returns the object for key, creating it if needed. Objects of
// mappings with cache enabled are created once and then shared; all other
// mappings produce a new object on every call, including when they are
// injected as arguments.
//
// Get fails with CONFIGURATION_NOT_DEFINED for an unknown key. Errors from
// the mapping type are returned as CONSTRUCTION_FAILED unless they already
// are coded errors. Nothing is cached on failure.
//
// Get is safe for concurrent use. Construction of a cached mapping is
// serialized per key, so its constructor runs at most once per context;
// dependencies are built under their own keys.
//
// Dependency cycles are not detected. A cycle through cached mappings
// blocks forever; one through uncached mappings recurses until the
// goroutine stack is exhausted.
func (c *AppContext) Get(key string) (any, error) {
	if instance, ok := c.cached(key); ok {
		c.metrics.RecordGet(context.Background(), key, observability.OutcomeHit)
		return instance, nil
	}

	m, ok := c.store.Get(key)
	if !ok {
		c.metrics.RecordGet(context.Background(), key, observability.OutcomeError)
		return nil, errors.ConfigurationNotDefined(key)
	}

	if lock, cached := c.building[key]; cached {
		lock.Lock()
		defer lock.Unlock()

		// Another goroutine may have finished while we waited.
		if instance, ok := c.cached(key); ok {
			c.metrics.RecordGet(context.Background(), key, observability.OutcomeHit)
			return instance, nil
		}
	}

	instance, err := c.create(m)
	if err != nil {
		c.metrics.RecordGet(context.Background(), key, observability.OutcomeError)
		c.log.Error("failed to create object", logger.MergeWithError(logger.Fields(
			logger.FieldMapping, key,
			logger.FieldType, m.Type(),
		), err))
		return nil, err
	}

	if m.Cache() {
		c.mutex.Lock()
		c.cache[key] = instance
		c.mutex.Unlock()
	}

	c.metrics.RecordGet(context.Background(), key, observability.OutcomeBuilt)
	return instance, nil
}

func (c *AppContext) cached(key string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	instance, ok := c.cache[key]
	return instance, ok
}

func (c *AppContext) create(m *mapping.Mapping) (any, error) {
	mt, ok := c.registry.Lookup(m.Type())
	if !ok {
		return nil, errors.TypeNotFound(m.Name(), m.Type())
	}

	start := time.Now()
	instance, err := mt.CreateObject(m, c.chain.Resolve)
	duration := time.Since(start)
	c.metrics.RecordConstruction(context.Background(), m.Name(), m.Type(), duration)

	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.ConstructionFailed(m.Name(), err)
	}

	c.log.Debug("object created", logger.Fields(
		logger.FieldMapping, m.Name(),
		logger.FieldType, m.Type(),
		logger.FieldCached, m.Cache(),
		logger.FieldDuration, duration.Milliseconds(),
	))
	return instance, nil
}

// MustGet is like Get but panics on error.
func (c *AppContext) MustGet(key string) any {
	instance, err := c.Get(key)
	if err != nil {
		panic(fmt.Sprintf("appcontext: failed to get %s: %v", key, err))
	}
	return instance
}

// Has reports whether a mapping named key exists. It never creates objects.
func (c *AppContext) Has(key string) bool {
	return c.store.Has(key)
}

// GetWithTags returns the objects of every mapping carrying all of tags,
// in definition order. With no tags every mapping matches. The first
// failing Get aborts the call.
func (c *AppContext) GetWithTags(tags ...string) ([]any, error) {
	matches := c.store.WithTags(tags...)
	instances := make([]any, 0, len(matches))
	for _, m := range matches {
		instance, err := c.Get(m.Name())
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}

	c.log.Debug("resolved tagged mappings", logger.Fields(
		logger.FieldTags, tags,
		logger.FieldCount, len(instances),
	))
	return instances, nil
}

// Names returns every mapping name in definition order.
func (c *AppContext) Names() []string {
	return c.store.Names()
}

// Mapping returns the normalized mapping stored under name.
func (c *AppContext) Mapping(name string) (*mapping.Mapping, bool) {
	return c.store.Get(name)
}

// InvalidResults returns the validation results carried by a
// VALIDATION_FAILED error, or nil.
func InvalidResults(err error) []mapping.Result {
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeValidationFailed {
		return nil
	}
	results, _ := appErr.Details["results"].([]mapping.Result)
	return results
}

// InvalidArgumentPairs returns the (mapping, argument) pairs carried by an
// INVALID_ARGUMENTS error, or nil.
func InvalidArgumentPairs(err error) []errors.ArgumentFailure {
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidArguments {
		return nil
	}
	failures, _ := appErr.Details["arguments"].([]errors.ArgumentFailure)
	return failures
}
