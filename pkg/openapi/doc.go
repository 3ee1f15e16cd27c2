// Package openapi exposes the public contracts for loading and parsing
// OpenAPI documents that seed form fields. Implementations live under
// internal/openapi so kin-openapi stays hidden from consumers; package
// importer maps the resulting operations onto the field model.
package openapi
