package events

import "github.com/atomicstack/save-point/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(kind, target string) {
	logging.Trace("app.exit", map[string]interface{}{"kind": kind, "target": target})
}

func (AppTracer) List(count int) {
	logging.Trace("app.list", map[string]interface{}{"count": count})
}
