package event

// Recorder captures events in emission order
// Used by tests and by the HUD's recent-event log
type Recorder struct {
	Events []GameEvent
	limit  int
}

// NewRecorder creates a recorder keeping at most limit events, 0 = unbounded
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Attach subscribes the recorder to types, or to every type when none given
func (r *Recorder) Attach(b *Bus, types ...EventType) Subscription {
	if len(types) == 0 {
		types = AllTypes()
	}
	return b.SubscribeFunc(r.record, types...)
}

func (r *Recorder) record(ev GameEvent) {
	r.Events = append(r.Events, ev)
	if r.limit > 0 && len(r.Events) > r.limit {
		r.Events = r.Events[len(r.Events)-r.limit:]
	}
}

// Emit lets a Recorder stand in for a Bus as a plain Emitter
func (r *Recorder) Emit(ev GameEvent) { r.record(ev) }

// OfType returns recorded events of type t
func (r *Recorder) OfType(t EventType) []GameEvent {
	var out []GameEvent
	for _, ev := range r.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// Count returns how many events of type t were recorded
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Reset drops all recorded events
func (r *Recorder) Reset() { r.Events = r.Events[:0] }
