package main

import (
	"log"
	_ "mp_checkout/docs"
	"mp_checkout/internal/adapter/http/routes"
	"mp_checkout/internal/config"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mercado Pago Checkout API
// @version         1.0
// @description     Checkout demo that relays card payments to Mercado Pago.

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Erro: %v", err)
		os.Exit(1)
	}

	routes.Run(cfg)
}
