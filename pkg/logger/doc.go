// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes from context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the Format
// and, when extractors are registered, wraps it so that every ContextExtractor
// runs before a record is written. Only the *Context logging methods carry a
// useful context.
//
//	log := logger.New(
//	    logger.WithDevelopment("brkit"),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.DebugContext(ctx, "formatter installed", logger.Component("brkit"))
//
// Attribute helpers in attr.go (Error, Component, Operation, Layout, ...)
// keep key names consistent. Error returns an empty attribute for a nil
// error, so no nil check is needed at the call site.
package logger
