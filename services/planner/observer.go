package planner

import "go.uber.org/zap"

// Observer receives a structured notification for every tool invocation:
// which normalized parameters drove which lookup, and a short outcome
// summary. The surrounding application owns the implementation.
type Observer interface {
	ToolInvoked(name string, params map[string]interface{}, summary string)
}

type zapObserver struct {
	logger *zap.Logger
}

// NewZapObserver returns an Observer that logs invocations at debug level.
func NewZapObserver(logger *zap.Logger) Observer {
	return &zapObserver{logger: logger}
}

func (o *zapObserver) ToolInvoked(name string, params map[string]interface{}, summary string) {
	o.logger.Debug("tool invoked",
		zap.String("tool", name),
		zap.Any("params", params),
		zap.String("summary", summary),
	)
}

type nopObserver struct{}

func (nopObserver) ToolInvoked(string, map[string]interface{}, string) {}
