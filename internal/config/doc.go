// Package config loads service configuration from environment variables and
// validates the connector and model credentials at startup.
package config
