package audit

import "log"

type Event struct {
	UserID    *uint
	UserEmail string
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.UserEmail,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// NewSilentDispatcher descarta todos los eventos. Sirve para armar
// casos de uso sin base de datos (tests).
func NewSilentDispatcher() *Dispatcher {
	return &Dispatcher{queue: make(chan Event, 100)}
}

// Dispatch nunca bloquea: si la cola está llena el evento se descarta.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
