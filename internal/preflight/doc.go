// Package preflight verifies a directory is safe to reorganize before any
// file is touched.
package preflight
