// Command adminctl rotates the admin password directly against the data
// directory, for recovery when the web UI is unreachable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/dmitrijs2005/linkfolio/internal/server/auth"
	"github.com/dmitrijs2005/linkfolio/internal/server/credentials"
	"github.com/dmitrijs2005/linkfolio/internal/server/storage"
)

func readPassword(prompt string) (string, error) {
	fmt.Println(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func run() error {
	dataDir := flag.String("d", "data", "data directory")
	flag.Parse()

	repo := credentials.NewFileRepository(
		storage.NewJSONFile(filepath.Join(*dataDir, "auth.json")))
	service := credentials.NewService(repo, &auth.BcryptHasher{})

	current, err := readPassword("Enter current password")
	if err != nil {
		return err
	}

	next, err := readPassword("Enter new password")
	if err != nil {
		return err
	}

	confirm, err := readPassword("Repeat new password")
	if err != nil {
		return err
	}
	if next != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := service.RotatePassword(context.Background(), current, next); err != nil {
		return err
	}

	fmt.Println("Password updated")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
