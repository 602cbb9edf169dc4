// Package logger builds *slog.Logger values for the helpers binaries and
// provides attribute constructors with consistent key names.
//
// New takes functional options: output format (text or json), level, static
// attributes, environment presets and context extractors. Extractors run on
// every record, so values stored in a context.Context (the file being
// processed, for example) show up without threading them through calls:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "helpers"),
//	    logger.WithContextValue("file", fileKey{}),
//	)
//	log.DebugContext(ctx, "resolved", logger.Path("[a][b]"), logger.Strategy(res.Strategy))
//
// Library packages never log through slog.Default. They accept a logger and
// fall back to Discard.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally:
//
//	log.Info("lint finished", logger.Error(err))
package logger
