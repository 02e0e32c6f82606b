// Package logger provides structured logging for the kafscope decoding
// subsystem, built on Uber's Zap logger.
//
// Because kafscope renders a full-screen terminal UI, log output cannot
// simply be written to the terminal while the application is running. The
// logger therefore does two things:
//
//  1. Writes structured JSON logs to stderr, which the user can redirect to
//     a file when troubleshooting.
//  2. Captures the most recent log entries in a bounded in-memory buffer so
//     the UI can present them in its log view without scraping any output
//     stream.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "kafscope",
//	})
//	defer log.Zap.Sync()
//
//	log.Info("consumer started", zap.String("topic", "orders"))
//
//	for _, entry := range log.Capture.Entries() {
//	    // render entry in the UI log view
//	}
//
// Using with FX:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "kafscope"}
//	    }),
//	)
package logger
