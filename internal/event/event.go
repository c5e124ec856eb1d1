// internal/event/event.go
package event

// EventType тип события
type EventType string

// Event событие с необязательной полезной нагрузкой
type Event struct {
	Type EventType
	Data interface{}
}

// Listener интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher синхронный диспетчер событий. Все вызовы происходят в потоке
// кадра, поэтому блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на события типа eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe отписывает listener. Слушатель должен быть сравнимым
// (указатель на структуру).
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			// копия, чтобы не портить срез, который сейчас обходит Dispatch
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			d.listeners[eventType] = append(next, listeners[i+1:]...)
			return
		}
	}
}

// Listeners возвращает число подписчиков на тип.
func (d *Dispatcher) Listeners(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch отправляет событие всем подписчикам в порядке подписки.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit короткая форма Dispatch.
func (d *Dispatcher) Emit(eventType EventType, data interface{}) {
	d.Dispatch(Event{Type: eventType, Data: data})
}
