package main

import (
	"log"

	"github.com/meharahmadft6/educonnect/config"
	"github.com/meharahmadft6/educonnect/mockapi"
)

func main() {
	config.LoadConfig()

	server, err := mockapi.New(mockapi.Options{
		JWTKey:    config.AppConfig.JWTKey,
		SaltRound: config.AppConfig.SaltRound,
	})
	if err != nil {
		log.Fatalf("Failed to start mock API: %v", err)
	}

	log.Printf("Mock API is running on port %s", config.AppConfig.MockPort)
	log.Fatal(server.Listen(":" + config.AppConfig.MockPort))
}
