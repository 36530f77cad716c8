package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	queueSize    = 100
	writeTimeout = 5 * time.Second
)

// Actions recorded by the scheduler, the patient registry and examinations.
const (
	ActionAppointmentCreated     = "appointment_created"
	ActionAppointmentRescheduled = "appointment_rescheduled"
	ActionAppointmentCancelled   = "appointment_cancelled"
	ActionAppointmentCompleted   = "appointment_completed"
	ActionPatientCreated         = "patient_created"
	ActionPatientUpdated         = "patient_updated"
	ActionPatientDeleted         = "patient_deleted"
	ActionUserCreated            = "user_created"

	ActionExaminationRequested = "examination_requested"
	ActionExaminationCompleted = "examination_completed"
	ActionExaminationCancelled = "examination_cancelled"
)

type Event struct {
	ActorID  uuid.UUID
	Action   string
	Entity   string
	EntityID uuid.UUID
	Metadata any
}

// Dispatcher writes events on a background goroutine. Dispatch never blocks;
// when the queue is full the event is dropped.
type Dispatcher struct {
	sink   Sink
	log    zerolog.Logger
	queue  chan Event
	done   chan struct{}
	closed sync.Once
	mu     sync.RWMutex
	stop   bool
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log.With().Str("component", "audit").Logger(),
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.log.Error().Err(err).
				Str("action", ev.Action).
				Str("entity_id", ev.EntityID.String()).
				Msg("audit write failed")
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stop {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until queued ones are written.
func (d *Dispatcher) Close() {
	d.closed.Do(func() {
		d.mu.Lock()
		d.stop = true
		close(d.queue)
		d.mu.Unlock()
	})
	<-d.done
}
