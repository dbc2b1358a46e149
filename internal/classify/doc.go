// Package classify builds per-student grade features from the combined
// record table, fits a logistic regression predicting declared-major
// membership, and sweeps the decision threshold to expose the
// precision/recall tradeoff.
package classify
