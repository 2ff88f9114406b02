package obs

import (
	"time"

	"go.uber.org/zap"
)

// Time logs the duration of an operation when the returned func runs,
// including the error (if any) the operation finished with.
//
// Usage: defer obs.Time(log, "train_model")(&err)
func Time(log *zap.Logger, op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Warn("operation failed",
				zap.String("op", op),
				zap.Int64("dur_ms", dur.Milliseconds()),
				zap.Error(*errp),
			)
			return
		}
		log.Info("operation completed",
			zap.String("op", op),
			zap.Int64("dur_ms", dur.Milliseconds()),
		)
	}
}
