// internal/event/event.go
package event

// EventType тип события
type EventType string

// Event событие симуляции
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

// Listener интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию. Отписать её нельзя.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher синхронный диспетчер событий. Все подписчики вызываются
// внутри тика, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe снимает подписку. ListenerFunc так снять нельзя: функции не сравниваются.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit короткая форма Dispatch.
func (d *Dispatcher) Emit(eventType EventType, data any) {
	d.Dispatch(Event{Type: eventType, Data: data})
}
