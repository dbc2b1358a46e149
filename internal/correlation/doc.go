// Package correlation runs the spurious-correlation demonstration: a
// pairwise Pearson scan over independent year-indexed series with an
// uncorrected significance threshold.
package correlation
