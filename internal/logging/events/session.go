package events

import "github.com/atomicstack/save-point/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Seed(count, skipped int) {
	logging.Trace("session.seed", map[string]interface{}{"count": count, "skipped": skipped})
}

func (SessionTracer) Cursor(cursor int) {
	logging.Trace("session.cursor", map[string]interface{}{"cursor": cursor})
}

func (SessionTracer) Add(path string, added bool) {
	logging.Trace("session.add", map[string]interface{}{"path": path, "added": added})
}

func (SessionTracer) AddError(err error) {
	logging.Trace("session.add.error", map[string]interface{}{"error": err.Error()})
}

func (SessionTracer) Delete(path string, cursor int) {
	logging.Trace("session.delete", map[string]interface{}{"path": path, "cursor": cursor})
}

func (SessionTracer) Confirm(target string) {
	logging.Trace("session.confirm", map[string]interface{}{"target": target})
}

func (SessionTracer) Quit(count int) {
	logging.Trace("session.quit", map[string]interface{}{"count": count})
}
