package cache

import (
	"encoding/json"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/you/parking-booking/internal/domain"
)

const parkingKeyPrefix = "PARKING-"

// ParkingCache keeps parking records in Redis so the listing/detail pages
// don't hit Postgres on every browse. Values are JSON with a TTL; writers
// invalidate.
type ParkingCache struct {
	pool *redis.Pool
	ttl  time.Duration
}

func NewParkingCache(addr string, ttl time.Duration) *ParkingCache {
	return &ParkingCache{
		pool: &redis.Pool{
			MaxIdle:     8,
			IdleTimeout: 240 * time.Second,
			Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", addr) },
		},
		ttl: ttl,
	}
}

func makeKey(id string) string { return parkingKeyPrefix + id }

func (c *ParkingCache) Get(id string) (*domain.Parking, error) {
	conn := c.pool.Get()
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", makeKey(id)))
	if err != nil {
		return nil, err
	}
	var p domain.Parking
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *ParkingCache) Set(p *domain.Parking) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	conn := c.pool.Get()
	defer conn.Close()

	_, err = conn.Do("SET", makeKey(p.ID), data, "EX", int(c.ttl.Seconds()))
	return err
}

func (c *ParkingCache) Invalidate(id string) error {
	conn := c.pool.Get()
	defer conn.Close()

	_, err := conn.Do("DEL", makeKey(id))
	return err
}

func (c *ParkingCache) Close() error { return c.pool.Close() }

// IsMiss distinguishes "not cached" from a Redis failure.
func IsMiss(err error) bool { return err == redis.ErrNil }
