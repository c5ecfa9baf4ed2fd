package config

// ResolveOutput exports resolveOutput for testing.
var ResolveOutput = resolveOutput //nolint:gochecknoglobals // test export

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export
