package main

import (
	"flag"
	"log"
	"os"

	"github.com/jrm-dev/go-tile-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	log.Printf("go-tile-tracer web UI listening on http://localhost:%d", *port)
	log.Printf("Endpoints: /api/render (SSE tile stream), /api/thumbnail, /api/health")

	if err := server.NewServer(*port).Start(); err != nil {
		log.Printf("Server exited: %v", err)
		os.Exit(1)
	}
}
