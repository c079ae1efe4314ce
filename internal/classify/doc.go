// Package classify maps raw acquisition filenames to organizer actions
// without touching the filesystem.
package classify
