// Package logging provides structured logging for the munconf CLI using slog.
//
// Loggers write colorized text (on a terminal) or JSON, optionally teeing a
// JSON copy to a log file. Attributes that carry registrant contact details
// (email, phone, emergency phone) are masked in every output.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("validated", "file", path, "violations", 0)
//
// Use [ForTest] in tests and [NewDiscard] where output is not wanted.
package logging
