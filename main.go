package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rashidrk201111/badshahpizzahub/configs"
	"github.com/rashidrk201111/badshahpizzahub/routes"
	"github.com/rashidrk201111/badshahpizzahub/services"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(db); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Events: Kafka when brokers are configured, otherwise log only
	var events services.EventPublisher = services.LogPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := services.NewKafkaService(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
		defer kafka.Close()
		events = kafka
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := routes.NewDeps(db, cfg, events)
	go deps.Hub.Run(ctx)

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, deps)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
