// Package config loads the configurable numeric constants of spec.md §6.3
// (window, clamps, epsilon, thresholds) from YAML, following the
// load/validate/default pattern used elsewhere in the pack for profile
// files.
package config
