package classifier

import (
	"log/slog"

	"github.com/viant/sparse-knn/vector"
)

type options struct {
	logger   *slog.Logger
	distance vector.DistanceFunction
}

// Option configures a Classifier.
type Option func(*options)

// WithLogger sets the logger used for training and evaluation progress.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDistance selects the distance metric of the training store. Squared
// L2 and L2 rank rows identically.
func WithDistance(d vector.DistanceFunction) Option {
	return func(o *options) { o.distance = d }
}

func defaultOptions() options {
	return options{
		logger:   slog.Default(),
		distance: vector.DistanceFunctionSquaredL2,
	}
}
