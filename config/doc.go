// Package config loads the run configuration of the netrand command from
// defaults, a YAML file, a dotenv file and NETRAND_* environment variables.
package config
