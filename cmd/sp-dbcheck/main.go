package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"syspulse/internal/server"
)

func main() {
	dbPath := os.Getenv("SP_DB_PATH")
	if dbPath == "" {
		dbPath = "./data/syspulse.db"
	}

	db, err := server.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' ORDER BY name;`)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	fmt.Println("Tables:")
	for rows.Next() {
		var name string
		_ = rows.Scan(&name)
		fmt.Println(" -", name)
	}

	for _, t := range []string{"cpu_metrics", "memory_metrics", "network_metrics", "battery_metrics", "storage_metrics", "process_metrics"} {
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM ` + t).Scan(&n); err == nil {
			fmt.Printf("%s: %d rows\n", t, n)
		}
	}

	var profiles int
	_ = db.QueryRow(`SELECT COUNT(*) FROM system_profiles;`).Scan(&profiles)
	fmt.Println("Profiles:", profiles)

	_ = sql.ErrNoRows // keeps sql imported if your IDE nags
}
