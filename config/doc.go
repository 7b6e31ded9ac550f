// Package config loads container settings and mapping files.
//
// Settings come from a YAML file, an optional .env file and the process
// environment, merged with Viper. Environment variables use the service
// name as prefix with dots replaced by underscores (BILLING_LOGGING_LEVEL
// overrides logging.level for service "billing").
//
// # Usage
//
//	settings, v, err := config.Load("billing")
//	defs, err := config.LoadMappings(settings.Mappings)
//
// Mapping files are YAML documents whose top-level keys are mapping names.
// Declaration order is preserved.
package config
