package events

import "github.com/atomicstack/save-point/internal/logging"

type StoreTracer struct{}

type storeReason string

const (
	StoreReasonMissing storeReason = "missing"
	StoreReasonCorrupt storeReason = "corrupt"
	StoreReasonIO      storeReason = "io"
)

var Store = StoreTracer{}

func (StoreTracer) Load(path string, count int) {
	logging.Trace("store.load", map[string]interface{}{"path": path, "count": count})
}

func (StoreTracer) Fallback(path string, reason storeReason, err error) {
	payload := map[string]interface{}{"path": path, "reason": string(reason)}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("store.fallback", payload)
}

func (StoreTracer) Save(path string, count int) {
	logging.Trace("store.save", map[string]interface{}{"path": path, "count": count})
}

func (StoreTracer) SaveError(path string, err error) {
	logging.Trace("store.save.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (StoreTracer) Repoint(from, to string) {
	logging.Trace("store.repoint", map[string]interface{}{"from": from, "to": to})
}
