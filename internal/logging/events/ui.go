package events

import "github.com/atomicstack/pet-dashboard/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type InputTracer struct{}

var (
	UI     = UITracer{}
	Action = ActionTracer{}
	Input  = InputTracer{}
)

func (UITracer) Screen(screen string) {
	logging.Trace("ui.screen", map[string]interface{}{"screen": screen})
}

func (UITracer) Cursor(cursor, total int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "total": total})
}

func (UITracer) RenderError(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.render-error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (InputTracer) Key(key string) {
	logging.Trace("input.key", map[string]interface{}{"key": key})
}

func (InputTracer) Failure(err error) {
	if err == nil {
		return
	}
	logging.Trace("input.failure", map[string]interface{}{"error": err.Error()})
}
