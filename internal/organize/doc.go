// Package organize applies the spectrum filename convention to a directory:
// it deletes instrument binaries, relocates reference and sample spectra
// into their subdirectory tree, and reports per-file failures without
// aborting the batch.
package organize
