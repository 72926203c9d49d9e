package ports

//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks

// Logger defines the interface for logging.
type Logger interface {
	// Debug logs a diagnostic message that is hidden unless verbose output is enabled.
	Debug(msg string)
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error together with its cause chain.
	Error(err error)
}
