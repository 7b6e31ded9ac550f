package appcontext

import (
	"fmt"

	"github.com/mcortesi/dinjector/config"
	"github.com/mcortesi/dinjector/logger"
	"github.com/mcortesi/dinjector/mapping"
	"github.com/mcortesi/dinjector/observability"
	"github.com/mcortesi/dinjector/resolver"
)

// Bootstrap builds an application context from files. It loads the
// service settings, configures logging from them, reads the mapping file
// they name and builds the context with two extra resolvers: "env:" keys
// read the environment (after the configured env files) and "config:"
// keys read the settings themselves.
//
//	app, err := appcontext.Bootstrap("billing", mappingtype.Defaults(catalog))
func Bootstrap(serviceName string, types []mapping.Type, opts ...config.LoaderOption) (*AppContext, error) {
	settings, v, err := config.Load(serviceName, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	log := logger.New(&settings.Logging, settings.Name)

	defs, err := config.LoadMappings(settings.Mappings)
	if err != nil {
		return nil, err
	}

	env, err := resolver.NewEnv(settings.EnvFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}

	metrics, err := observability.NewDefaultMetrics()
	if err != nil {
		return nil, err
	}

	log.Debug("bootstrapping application context", logger.Fields(
		logger.FieldCount, defs.Len(),
		"mappings", settings.Mappings,
	))

	return New(defs, types,
		WithResolvers(env, resolver.NewConfig(v)),
		WithLogger(log),
		WithMetrics(metrics),
		WithTracer(observability.Tracer(settings.Name)),
	)
}
