package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"syspulse/internal/server"
)

func main() {
	cfg, err := server.LoadConfig(os.Getenv("SP_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Ensure DB directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if dbDir != "." && dbDir != "" {
		if err := os.MkdirAll(dbDir, 0700); err != nil {
			log.Fatalf("failed to create db dir %s: %v", dbDir, err)
		}
	}

	db, err := server.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db %s: %v", cfg.DBPath, err)
	}

	api := server.NewAPI(server.NewSQLiteStore(db), cfg)
	api.DB = db

	r := mux.NewRouter()
	r.Use(server.RequestLogger)
	r.Use(server.MetricsMiddleware)

	r.HandleFunc("/api/initialize", api.Initialize).Methods("GET")
	r.HandleFunc("/api/metrics", api.GetMetrics).Methods("GET")
	r.HandleFunc("/api/metrics", api.PostMetrics).Methods("POST")
	r.HandleFunc("/api/metrics/history", api.GetHistory).Methods("GET")
	r.HandleFunc("/api/metrics/live", api.LiveMetrics).Methods("GET")
	r.HandleFunc("/api/processes", api.GetProcesses).Methods("GET")
	r.HandleFunc("/api/system", api.GetSystem).Methods("GET")
	r.HandleFunc("/api/health", api.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())
	r.PathPrefix("/").Handler(http.FileServer(http.Dir("./web/dist")))

	log.Printf("sp-server listening on %s", cfg.Addr)
	log.Printf("db: %s", cfg.DBPath)
	log.Printf("default profile: %d", cfg.DefaultProfileID)

	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
