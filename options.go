package kdgo

// Options contains configuration options for index construction.
type Options struct {
	// MaxLeafSize is the maximum number of points per leaf. Smaller leaves
	// prune more aggressively but deepen the tree; must be at least 1.
	MaxLeafSize int

	// DistanceFunc overrides the default squared Euclidean metric. A
	// replacement must return non-negative squared dissimilarities that stay
	// comparable with the squared-distance pruning bounds.
	DistanceFunc DistanceFunc

	// Logger receives build diagnostics at debug level.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for the index.
var DefaultOptions = Options{
	MaxLeafSize: 16,
}

// WithMaxLeafSize sets the maximum number of points per leaf.
func WithMaxLeafSize(n int) func(o *Options) {
	return func(o *Options) {
		o.MaxLeafSize = n
	}
}

// WithDistanceFunc replaces the default squared Euclidean metric.
func WithDistanceFunc(fn DistanceFunc) func(o *Options) {
	return func(o *Options) {
		o.DistanceFunc = fn
	}
}

// WithLogger sets the logger used during construction.
func WithLogger(l *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = l
	}
}
