package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ServiceBooking/internal/config"
)

// Выпускает токен администратора, подписанный секретом из ADMIN_JWT_SECRET
func main() {
	configPath := flag.String("config", "config.toml", "path to config.toml")
	subject := flag.String("subject", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	token, err := middleware.IssueToken([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, *subject, middleware.RoleAdmin, *ttl, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
