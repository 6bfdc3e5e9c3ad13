package eui

// UIEventType defines the kind of event emitted by widgets.
type UIEventType int

const (
	EventHueChanged UIEventType = iota
	EventColorChanged
	EventCopied
	EventExported
)

// UIEvent describes a user interaction with a widget.
type UIEvent struct {
	Type  UIEventType
	Color Color
	Text  string
}

// EventHandler provides both channel and callback based event delivery.
type EventHandler struct {
	Events chan UIEvent
	Handle func(UIEvent)
}

// Emit delivers the event through the channel and callback if present. A
// full channel drops the event rather than blocking the UI thread.
func (h *EventHandler) Emit(ev UIEvent) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

// NewHandler returns a handler with a small buffered channel.
func NewHandler() *EventHandler {
	return &EventHandler{Events: make(chan UIEvent, 8)}
}
