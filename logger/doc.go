// Package logger provides structured logging for flowkit using zerolog.
//
// Loggers are created from a Config (level, format, output) and can be
// scoped to a component. Fields are passed as maps:
//
//	log := logger.Get("config")
//	log.Info("load yaml file", logger.Fields(logger.FieldPath, path))
package logger
