package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/you/parking-booking/internal/cache"
	"github.com/you/parking-booking/internal/handlers"
	"github.com/you/parking-booking/internal/middlewares"
	"github.com/you/parking-booking/internal/repository"
	"github.com/you/parking-booking/internal/service"
	"github.com/you/parking-booking/pkg/auth"
	"github.com/you/parking-booking/pkg/config"
	"github.com/you/parking-booking/pkg/db"
	"github.com/you/parking-booking/pkg/mq"
	"github.com/you/parking-booking/pkg/obs"
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

	shutdown := obs.InitTracer("parking-api")
	defer func() { _ = shutdown(context.Background()) }()

	// DB + migrations
	gdb := db.Open(cfg.PGParkingDSN)
	userRepo := repository.NewUserRepo(gdb)
	parkingRepo := repository.NewParkingRepo(gdb)
	resvRepo := repository.NewReservationRepo(gdb)
	favRepo := repository.NewFavoriteRepo(gdb)
	must(0, userRepo.Migrate())
	must(0, parkingRepo.Migrate())
	must(0, resvRepo.Migrate())
	must(0, favRepo.Migrate())

	// Events
	resvPub := must(mq.NewPublisher(cfg.RabbitURL, cfg.ReservationExchange))
	defer resvPub.Close()
	parkingPub := must(mq.NewPublisher(cfg.RabbitURL, cfg.ParkingExchange))
	defer parkingPub.Close()

	// Cache
	parkingCache := cache.NewParkingCache(cfg.RedisAddr, 5*time.Minute)
	defer parkingCache.Close()

	// Services
	tokens := auth.NewTokens(cfg.JWTSecret)
	authSvc := service.NewAuthSvc(userRepo, tokens,
		time.Duration(cfg.JWTExpireMin)*time.Minute,
		time.Duration(cfg.RefreshExpireHr)*time.Hour)
	userSvc := service.NewUserSvc(userRepo)
	parkingSvc := service.NewParkingSvc(parkingRepo, parkingCache, parkingPub)
	resvSvc := service.NewReservationSvc(resvRepo, parkingRepo, resvPub)
	favSvc := service.NewFavoriteSvc(favRepo, parkingRepo)

	r := gin.Default()
	v1 := r.Group("/v1")
	{
		ah := handlers.NewAuthHandler(authSvc)
		v1.POST("/auth/register", ah.Register)
		v1.POST("/auth/login", ah.Login)

		uh := handlers.NewUserHandler(userSvc)
		me := v1.Group("/users/me")
		me.Use(middlewares.JWTAuth(tokens))
		me.GET("", uh.GetMe)
		me.PUT("", uh.UpdateMe)

		ph := handlers.NewParkingHandler(parkingSvc)
		rh := handlers.NewReservationHandler(resvSvc)
		v1.GET("/parkings", ph.List)
		v1.GET("/parkings/:id", ph.Get)
		v1.GET("/parkings/:id/availability", rh.CheckAvailability)
		v1.GET("/parkings/:id/reservations", rh.ListByParking)

		secured := v1.Group("")
		secured.Use(middlewares.JWTAuth(tokens))
		{
			owner := secured.Group("")
			owner.Use(middlewares.RequireRole("OWNER", "ADMIN"))
			owner.POST("/parkings", ph.Create)

			secured.GET("/myparkings", ph.ListMine)
			secured.PUT("/parkings/:id", ph.Update)
			secured.DELETE("/parkings/:id", ph.Delete)

			secured.POST("/reservations", rh.Create)
			secured.GET("/reservations", rh.ListMine)

			fh := handlers.NewFavoriteHandler(favSvc)
			secured.POST("/parkings/:id/favorite", fh.Add)
			secured.DELETE("/parkings/:id/favorite", fh.Remove)
			secured.GET("/favorites", fh.List)
		}
	}

	log.Println("[api] listening on", cfg.APIHTTPAddr)
	log.Fatal(r.Run(cfg.APIHTTPAddr))
}
