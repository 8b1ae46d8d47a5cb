package audit

// Sink es el punto de entrada que usan los casos de uso; en producción
// siempre es el Dispatcher asíncrono.
type Sink interface {
	Dispatch(ev Event)
}

// NopSink descarta eventos (tests).
type NopSink struct{}

func (NopSink) Dispatch(Event) {}
