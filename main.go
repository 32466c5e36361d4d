package main

import (
	"log"

	"smartcampus-server/confs"
	"smartcampus-server/db"
	"smartcampus-server/seed"
	"smartcampus-server/server"
)

func main() {
	// load config
	if err := confs.LoadConfig(); err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// bootstrap demo data on an empty database
	if err := seed.Run(database); err != nil {
		log.Printf("Seed error: %v", err)
	}

	// run server
	srv := server.NewServer(database)
	srv.Start()
}
