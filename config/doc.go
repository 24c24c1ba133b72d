// Package config defines RouteCore's declarative configuration surface:
// every budget, dispatch threshold, and policy enum listed in spec §6,
// loadable from YAML via gopkg.in/yaml.v3 or built programmatically via
// Defaults(). Grounded on 99souls-ariadne/engine.Config's flat,
// struct-tagged style and its companion Defaults() constructor.
package config
