package audit

import "log"

type Event struct {
	Site         string
	Psychologist string
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

// Sink receives audit entries. The gorm-backed Logger is the production sink.
type Sink interface {
	Log(
		site string,
		psychologist string,
		action string,
		entity string,
		entityID *uint,
		metadata any,
	) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.Site,
			ev.Psychologist,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: drop audit, never break the request path
		log.Println("audit queue full, dropping event")
	}
}
