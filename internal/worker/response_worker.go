package worker

import (
	"context"

	"go.uber.org/zap"

	"survey-builder/internal/metrics"
)

type ResponseEvent struct {
	SurveyID   string
	ResponseID string
	Answers    int
	TimeTaken  int
}

type ResponseWorker struct {
	Ch     <-chan ResponseEvent
	logger *zap.Logger
	// handled is called after each event, used by tests.
	handled func(ResponseEvent)
}

func NewResponseWorker(ch <-chan ResponseEvent, logger *zap.Logger) *ResponseWorker {
	return &ResponseWorker{Ch: ch, logger: logger}
}

// Run consumes events until ctx is done or the channel is closed.
func (w *ResponseWorker) Run(ctx context.Context) {
	w.logger.Info("response worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("response worker stopped")
			return
		case ev, ok := <-w.Ch:
			if !ok {
				w.logger.Info("response worker channel closed")
				return
			}
			metrics.IncResponse()
			w.logger.Debug("survey response recorded",
				zap.String("survey_id", ev.SurveyID),
				zap.String("response_id", ev.ResponseID),
				zap.Int("answers", ev.Answers),
				zap.Int("time_taken_min", ev.TimeTaken),
			)
			if w.handled != nil {
				w.handled(ev)
			}
		}
	}
}
