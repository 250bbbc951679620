package notify

import (
	"log/slog"

	"github.com/llehouerou/erralert/internal/errmsg"
	"github.com/llehouerou/erralert/internal/errreport"
)

// mirrorBuffer bounds the changes waiting for the D-Bus worker.
const mirrorBuffer = 16

// Mirror copies the reporter's alerts to desktop notifications.
// An alert being shown (or replaced) sends a critical notification that
// replaces the previous one; acknowledging the alert closes it.
type Mirror struct {
	notifier    Notifier
	logger      *slog.Logger
	events      chan errreport.Change
	stopped     chan struct{}
	unsubscribe func()
}

// NewMirror subscribes to r. Must be called before the event loop starts or
// from it, like any reporter subscription.
func NewMirror(r *errreport.Reporter, n Notifier, logger *slog.Logger) *Mirror {
	m := &Mirror{
		notifier: n,
		logger:   logger,
		events:   make(chan errreport.Change, mirrorBuffer),
		stopped:  make(chan struct{}),
	}
	m.unsubscribe = r.Subscribe(m.enqueue)
	go m.run()
	return m
}

// enqueue runs on the event loop and must not block it.
func (m *Mirror) enqueue(c errreport.Change) {
	select {
	case m.events <- c:
	default:
		m.logger.Warn("notification dropped, worker busy")
	}
}

func (m *Mirror) run() {
	defer close(m.stopped)

	var id uint32
	for c := range m.events {
		switch {
		case c.Current != nil:
			newID, err := m.notifier.Notify(Notification{
				Title:      "Error",
				Body:       c.Current.Error(),
				Timeout:    0,
				ReplacesID: id,
				Urgency:    UrgencyCritical,
			})
			if err != nil {
				m.logger.Warn(errmsg.Format(errmsg.OpNotify, err))
				continue
			}
			id = newID
		case c.Hidden() && id != 0:
			if err := m.notifier.Close(id); err != nil {
				m.logger.Warn(errmsg.Format(errmsg.OpNotify, err))
			}
			id = 0
		}
	}
}

// Close unsubscribes and waits for pending notifications to be sent.
func (m *Mirror) Close() {
	if m.unsubscribe == nil {
		return
	}
	m.unsubscribe()
	m.unsubscribe = nil
	close(m.events)
	<-m.stopped
}
