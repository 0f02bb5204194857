package event

// Recorder запоминает события текущего тика в порядке публикации.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// SubscribeAll подписывает рекордер на все перечисленные типы.
func (r *Recorder) SubscribeAll(d *Dispatcher, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, r)
	}
}

func (r *Recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

// Reset очищает журнал перед новым тиком.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
}

// Events возвращает копию журнала.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count возвращает число записанных событий типа t.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
