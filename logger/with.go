package logger

// WithFields creates a new logger with pre-set fields
func (log *SlogLogger) WithFields(fields ...any) *SlogLogger {
	if len(fields) == 0 {
		return log
	}

	return &SlogLogger{logger: log.logger.With(fields...), contextFields: log.contextFields}
}

// WithError creates a new logger with error field
func (log *SlogLogger) WithError(err error) *SlogLogger {
	if err == nil {
		return log
	}

	return log.WithFields("error", err.Error())
}

// WithService tags every record with the service name and environment.
func (log *SlogLogger) WithService(name, env string) *SlogLogger {
	fields := make([]any, 0, 4) //nolint:mnd // two pairs

	if name != "" {
		fields = append(fields, "service", name)
	}

	if env != "" {
		fields = append(fields, "env", env)
	}

	return log.WithFields(fields...)
}
