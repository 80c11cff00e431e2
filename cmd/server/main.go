// Command server runs the concept deck HTTP API.
//
// Settings come from the environment; a .env file in the working directory
// is loaded first when present. "server env" prints the recognised variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/conceptdeck-backend/internal/app"
	"github.com/heartmarshall/conceptdeck-backend/internal/config"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "env" {
		desc, err := config.Describe()
		if err != nil {
			log.Fatalf("describe config: %v", err)
		}
		fmt.Println(desc)
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
