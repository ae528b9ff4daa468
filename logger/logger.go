package logger

// Logger provides a standardized logging interface for the NationStates Go client.
// It defines methods for different log levels (Debug, Info, Warn, Error) to enable
// consistent logging throughout the client library. This interface allows users
// to plug in their preferred logging implementation (e.g., glog, logrus, standard log),
// use NewZap to log through a *zap.Logger, or use the provided Noop logger
// to disable logging entirely.
//
// The logger is used throughout the client for:
// - Request assembly and dispatch debugging
// - Rate limiter waits and cancellations
// - Retry attempt tracking
// - Connection and transport issues
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client, err := nationstates_go.NewClient(nationstates_go.WithLogger(myLogger))
//
//	// Using with zap
//	client, err := nationstates_go.NewClient(nationstates_go.WithLogger(logger.NewZap(zapLogger)))
//
//	// Disable logging entirely
//	client, err := nationstates_go.NewClient(nationstates_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
