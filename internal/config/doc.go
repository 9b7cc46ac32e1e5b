// Package config loads, normalizes, and validates chronicle's TOML
// configuration.
//
// Load layers a config file over repository defaults, expands and
// absolutizes paths, and validates threshold ranges before anything else
// runs. The triage components themselves never re-validate configuration;
// they trust the values this package hands them.
package config
