// Package classifier implements a 1-nearest-neighbor classifier over binary
// sparse feature vectors.
//
// Training densifies every example of every class into a brute-force row
// store, tagging each row with its class index. Classification computes the
// squared L2 distance from the densified query to every stored row and
// returns the label of the closest one; on ties the earliest stored row
// wins. EvaluateDataset classifies a whole per-class dataset and returns the
// per-class and overall accuracy.
//
// The k argument of ClassifyExample and EvaluateDataset is accepted for API
// compatibility but is ignored: classification is always 1-NN.
package classifier
