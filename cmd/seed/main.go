// Command seed logs in to a running API instance and populates any empty
// collections with the compiled-in default datasets.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"tendesign/api/internal/client"
	"tendesign/api/internal/content"
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:5000", "API base URL")
		username = flag.String("username", "admin", "admin username")
		password = flag.String("password", "", "admin password (required)")
		timeout  = flag.Duration("timeout", 30*time.Second, "overall timeout")
	)
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(*baseURL, "")
	if err := c.Login(ctx, *username, *password); err != nil {
		log.Fatalf("login failed: %v", err)
	}

	seeded, err := c.Init(ctx, content.DefaultBundle())
	if err != nil {
		log.Fatalf("init failed: %v", err)
	}
	if len(seeded) == 0 {
		log.Print("all collections already populated, nothing to do")
		return
	}
	for _, kind := range seeded {
		log.Printf("seeded %s", kind)
	}
}
