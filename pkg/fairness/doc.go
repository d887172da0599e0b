// Package fairness implements group-fairness measures over quality score
// distributions: the bias-corrected [GiniCoefficient], the
// [LowWeightedMeanScore] and the [MeanDiscardGap] with its discard helpers.
//
// All measures return the raw, lower-is-better value. [SQFR] and [CSQFR]
// turn a raw measure into a higher-is-better fairness ratio in [0,1].
package fairness
