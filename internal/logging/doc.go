// Package logging builds the slog loggers used across chronicle.
//
// Two output formats are supported: a console handler that renders
// "TIMESTAMP LEVEL component: message key=value" lines for interactive use,
// and a JSON handler for machine consumption. Component loggers attach a
// standardized component attribute so console output stays scannable.
package logging
