// Package logger provides the slog factory and attribute helpers used with
// validation execution contexts.
//
// New builds a *slog.Logger with JSON or text output, a minimum level, and
// optional static attributes; the result is meant to be handed to
// core.NewContext(..., core.WithLogger(l)) so every validator in an execution
// logs through the same instance.
//
// The attribute helpers keep validation log records uniform across
// implementations: ValidatorID, RuleID, ExecutionID, Outcome, and Error all
// emit fixed keys.
//
//	l := logger.New(logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
//	ctx := core.NewContext(context.Background(), core.WithLogger(l))
//	ctx.Logger().Info("validator passed",
//		logger.ValidatorID("email"),
//		logger.Outcome("success"),
//	)
package logger
