package main

import (
	"log"

	"bx-casino/internal/app"
)

func main() {
	server := app.NewServer()
	log.Fatal(server.Start())
}
