// Package observe provides structured-logging callbacks for pipeline
// inspection.  The callbacks fit the Tee and TeeErr combinators of the
// result and asyncresult packages, so a pipeline can be watched without
// altering the values flowing through it.
package observe

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Observer produces logging callbacks bound to a logger and a generated
// pipeline id, letting entries from one composed pipeline be correlated.
type Observer struct {
	logger     *zap.Logger
	pipelineID string
}

// New creates an Observer around the provided logger with a fresh pipeline id.
func New(logger *zap.Logger) *Observer {
	return &Observer{
		logger:     logger,
		pipelineID: uuid.NewString(),
	}
}

// NewNop creates an Observer that discards everything.
func NewNop() *Observer {
	return New(zap.NewNop())
}

// PipelineID returns the generated id attached to every log entry.
func (o *Observer) PipelineID() string {
	return o.pipelineID
}

// Value returns a Tee callback that logs the observed success value at info
// level under the given message.
func Value[A any](o *Observer, msg string) func(A) {
	return func(a A) {
		o.logger.Info(msg,
			zap.String("pipeline_id", o.pipelineID),
			zap.Any("value", a),
		)
	}
}

// Error returns a TeeErr callback that logs the observed failure value at
// error level under the given message.
func Error[E any](o *Observer, msg string) func(E) {
	return func(e E) {
		o.logger.Error(msg,
			zap.String("pipeline_id", o.pipelineID),
			zap.Any("error", e),
		)
	}
}
