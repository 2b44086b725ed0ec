// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. Settings are bound
// under the ITEMS_ prefix (with PORT kept as a bare alias for container
// platforms) and validated before the rest of the application sees them.
package config
