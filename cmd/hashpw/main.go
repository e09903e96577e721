// cmd/hashpw/main.go
//
// hashpw prints an AUTH_CREDENTIALS entry for the credentials login provider.
//
//	go run ./cmd/hashpw <email> <password>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/dryfruits-storefront/internal/config"
	"github.com/your-org/dryfruits-storefront/internal/pkg/auth"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <email> <password>")
		os.Exit(2)
	}

	email := strings.ToLower(strings.TrimSpace(os.Args[1]))
	password := os.Args[2]

	cfg := config.Default()
	cfg.Security.BcryptCost = 12
	passwords := auth.NewPasswordManager(cfg)

	hash, err := passwords.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Fatal("error generating hash")
	}

	if err := passwords.VerifyPassword(password, hash); err != nil {
		logrus.WithError(err).Fatal("hash verification failed")
	}

	fmt.Printf("%s:%s\n", email, hash)
}
