// Package stats provides the numeric building blocks of the pipeline:
// histogram bin-edge derivation for discrete grade levels, a
// repeated-sampling estimator for illustrating sampling variance, and
// descriptive column summaries.
package stats
