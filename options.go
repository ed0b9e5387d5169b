package stargrid

// Options contains configuration options for a Catalog.
type Options struct {
	// Logger receives structured build and query logs. Defaults to
	// NoopLogger.
	Logger *Logger

	// Metrics receives build and query latency callbacks. Defaults to
	// NoopMetricsCollector. Pass a *BasicMetricsCollector for simple
	// in-memory counters, or implement MetricsCollector to integrate
	// with a monitoring system.
	Metrics MetricsCollector
}

// DefaultOptions contains the default configuration options for a Catalog.
var DefaultOptions = Options{
	Metrics: NoopMetricsCollector{},
}

// New creates an empty catalog.
//
//	catalog := stargrid.New(func(o *stargrid.Options) {
//	    o.Logger = stargrid.NewTextLogger(slog.LevelDebug)
//	})
func New(optFns ...func(*Options)) *Catalog {
	opts := DefaultOptions

	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return &Catalog{
		opts: opts,
	}
}
