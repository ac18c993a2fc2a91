// Package findnew finds images in a new dump that have no perceptual
// duplicate in an existing image tree.
//
// Every new file is compared against the old files through an external
// perceptual-difference tool. The first distance under the threshold marks
// the new file as already present and skips its remaining comparisons.
package findnew
