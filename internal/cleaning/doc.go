// Package cleaning masks or drops obviously invalid values in the record
// tables. It is strictly a masking step: no repair, no imputation, and
// re-running a rule set over already-cleaned data is a no-op.
package cleaning
