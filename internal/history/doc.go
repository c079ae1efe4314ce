// Package history persists organize runs and their per-file outcomes in a
// local SQLite database so past reorganizations can be audited.
package history
