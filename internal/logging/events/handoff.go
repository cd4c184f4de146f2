package events

import "github.com/atomicstack/save-point/internal/logging"

type HandoffTracer struct{}

var Handoff = HandoffTracer{}

func (HandoffTracer) Write(path, target string) {
	logging.Trace("handoff.write", map[string]interface{}{"path": path, "target": target})
}
