package worker

import (
	"context"
	"errors"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/you/parking-booking/internal/events"
	"github.com/you/parking-booking/internal/notifier"
	"github.com/you/parking-booking/pkg/mq"
)

// errBadPayload marks deliveries that can never decode; redelivering them
// would loop forever, so they are dead-lettered instead.
var errBadPayload = errors.New("undecodable payload")

// NotifyWorker consumes reservation/parking events and hands them to the
// Notifier. Unknown routing keys are acked and skipped; undecodable bodies
// go to the DLQ; transient handler errors are nacked with requeue.
type NotifyWorker struct {
	cons     *mq.Consumer
	notifier notifier.Notifier
}

func NewNotifyWorker(cons *mq.Consumer, n notifier.Notifier) *NotifyWorker {
	return &NotifyWorker{cons: cons, notifier: n}
}

func (w *NotifyWorker) Run(ctx context.Context) error {
	msgs, err := w.cons.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handleDelivery(d); err != nil {
				if errors.Is(err, errBadPayload) {
					log.Printf("[notify] bad payload key=%s err=%v -> dead-letter", d.RoutingKey, err)
					_ = d.Nack(false, false)
					continue
				}
				log.Printf("[notify] handle error key=%s err=%v -> Nack&requeue", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *NotifyWorker) handleDelivery(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKReservationCreated:
		ev, err := events.Unmarshal[events.ReservationCreated](d.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadPayload, err)
		}
		return w.notifier.Notify("Reservation Created",
			fmt.Sprintf("Reservation %s (parking=%s) %s", ev.ReservationID, ev.ParkingID, notifier.HumanTimeRange(ev.Start, ev.End)))

	case events.RKParkingCreated:
		ev, err := events.Unmarshal[events.ParkingCreated](d.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadPayload, err)
		}
		return w.notifier.Notify("Parking Listed",
			fmt.Sprintf("Parking %q (%s) is now listed.", ev.Title, ev.ParkingID))

	case events.RKParkingDeleted:
		ev, err := events.Unmarshal[events.ParkingDeleted](d.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadPayload, err)
		}
		return w.notifier.Notify("Parking Removed",
			fmt.Sprintf("Parking %s was removed; %d reservation(s) cancelled.", ev.ParkingID, ev.ReservationsDropped))

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}
	return nil
}
