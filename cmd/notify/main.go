package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/you/parking-booking/internal/events"
	"github.com/you/parking-booking/internal/notifier"
	"github.com/you/parking-booking/internal/worker"
	"github.com/you/parking-booking/pkg/config"
	"github.com/you/parking-booking/pkg/mq"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	cons := must(mq.NewConsumer(cfg.RabbitURL, cfg.NotifyQueue, map[string][]string{
		cfg.ReservationExchange: {events.RKReservationCreated},
		cfg.ParkingExchange:     {events.RKParkingCreated, events.RKParkingDeleted},
	}, cfg.NotifyDLX))
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := worker.NewNotifyWorker(cons, notifier.NewConsole())
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Fatalf("[notify] worker stopped: %v", err)
		}
	}()
	log.Println("[notify] worker started")

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()
	log.Println("[notify] stopped")
}
