package main

import (
	"backend/internal/api"
	"log"
)

func main() {
	log.Println("Forecast backend start")
	api.StartServer()
	log.Println("Forecast backend terminated")
}
