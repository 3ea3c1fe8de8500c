package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-scene-generator/pkg/scene"
	"github.com/df07/go-scene-generator/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	configPath := flag.String("config", "", "YAML config file used as the base for every request")
	flag.Parse()

	cfg, err := scene.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		os.Exit(1)
	}

	webServer := server.NewServer(*port, cfg)

	log.Printf("Sphere Grid Scene Server")
	log.Printf("Fetch http://localhost:%d/api/scene?grid=15 to generate a scene", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
