package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/configs"
	"github.com/roshanx0/restaurant-ordering-saas/routes"
)

func main() {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg)
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("%s listening at %s", cfg.AppName, addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
