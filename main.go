package main

import (
	"log"

	"Courier/FiberConfig"
	"Courier/Models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	store := Models.NewEmailStore()
	FiberConfig.FiberConfig(store)
}
