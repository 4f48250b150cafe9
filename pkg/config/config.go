package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	PGParkingDSN string `envconfig:"PG_PARKING_DSN" required:"true"`
	// Redis cache
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	// JWT
	JWTSecret       string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin    int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`
	RefreshExpireHr int    `envconfig:"REFRESH_EXPIRE_HR" default:"720"`
	// RabbitMQ
	RabbitURL           string `envconfig:"RABBIT_URL" required:"true"`
	ReservationExchange string `envconfig:"RESERVATION_EXCHANGE" default:"reservation.exchange"`
	ParkingExchange     string `envconfig:"PARKING_EXCHANGE" default:"parking.exchange"`
	NotifyQueue         string `envconfig:"NOTIFY_QUEUE" default:"notify.q"`
	NotifyDLX           string `envconfig:"NOTIFY_DLX" default:"notify.dlx"`
	// Network
	APIHTTPAddr string `envconfig:"API_HTTP_ADDR" default:":8080"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
