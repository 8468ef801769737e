package activity

import "github.com/BruksfildServices01/appointment-desk/pkg/logging"

type Event struct {
	Action   string
	Entity   string
	EntityID *string
	ActorID  *string

	CustomerName *string
	StaffName    *string

	Message  string
	Metadata any
}

// Dispatcher writes activity entries off the request path. Logging must
// never fail an API call, so a full queue drops the event instead of
// blocking.
type Dispatcher struct {
	logger *Logger
	log    *logging.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.Default()
	}

	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

// NewNop returns a dispatcher that accepts and discards every event.
func NewNop() *Dispatcher {
	d := &Dispatcher{
		log:   logging.Default(),
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if d.logger == nil {
			continue
		}
		if err := d.logger.Log(ev); err != nil {
			d.log.Error("activity log write failed", "action", ev.Action, "error", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("activity queue full, dropping event", "action", ev.Action)
	}
}
