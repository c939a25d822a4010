// Package logger builds *slog.Logger instances and provides attribute helpers
// for the log lines emitted around feedback submission.
//
// # Usage
//
//	log := logger.New(
//		logger.WithDevelopment("feedback"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("feedback sent",
//		logger.Component("dialog"),
//		logger.AttemptID(id),
//		logger.Elapsed(start),
//	)
//
// Production setups emit JSON:
//
//	log := logger.New(logger.WithProduction("feedback"), logger.WithOutput(os.Stderr))
//
// # Nil safety
//
// Helpers such as Error, AttemptID and Recipient return an empty slog.Attr for
// nil or empty input, and slog skips empty attributes:
//
//	log.Error("send failed", logger.Error(err)) // fine even if err == nil
//
// Nop returns a logger that writes nothing, useful as a default in libraries.
package logger
