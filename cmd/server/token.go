package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/humidorlog/humidor/internal/config"
)

var tokenExpiry time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an owner access token",
	Long: `Mint a Bearer token for the API, signed with AUTH_SECRET.

The server only checks tokens when AUTH_SECRET is set; without it the
API is open and no token is needed.`,
	Example: `  humidor token
  humidor token --expires 168h`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runToken(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expires", 30*24*time.Hour, "Token lifetime")
}

func runToken() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Auth.Secret == "" {
		return errors.New("AUTH_SECRET is not set")
	}

	claims := jwt.RegisteredClaims{
		Subject:   "owner",
		Issuer:    "humidor",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Auth.Secret))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Println(signed)
	return nil
}
