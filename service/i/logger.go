package i

// Logger defines the leveled logging methods subsystems report through.
type Logger interface {
	// Info logs routine progress.
	Info(msg string)

	// Warning logs something off that the system tolerates.
	Warning(msg string)

	// Error logs a failure.
	Error(msg string)
}
