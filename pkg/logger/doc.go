// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks before delegating each record.
//
// Helper constructors in attr.go keep attribute names consistent across the
// validation engine: Shape, Failures, Path, Index, Kind and Locale describe a
// validation run; Error, Errors and Group are general purpose.
//
// # Usage
//
//	import "github.com/dmitrymomot/valid/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "signup-api"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	log.DebugContext(ctx, "validation failed",
//	    logger.Shape("named"),
//	    logger.Failures(3),
//	)
//
// # Configuration
//
//   - WithEnvironment / WithDevelopment / WithProduction - defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter - override output format.
//   - WithLevel - set a custom slog.Level; ParseLevel reads one from text.
//   - WithAttr - attach static attributes.
//   - WithContextExtractors / WithContextValue - inject attributes from context.
package logger
