package config

import (
	"log"
	"os"

	"bakery/storage"
)

// Store is the shared data store handle, initialized once at startup.
var Store *storage.Store

func InitStore() {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}

	store, err := storage.Open(dir)
	if err != nil {
		log.Fatalf("Failed to open data dir %s: %v", dir, err)
	}
	Store = store
	log.Printf("Data store loaded from %s", dir)
}

// Env returns an environment variable with a fallback.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
