package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/javed1310/Darwix-AI-Hackathon/internal/config"
	"github.com/javed1310/Darwix-AI-Hackathon/internal/core"
	appfx "github.com/javed1310/Darwix-AI-Hackathon/internal/fx"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const credentialHint = "Set your Groq API key in the environment or in a .env file."

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

// run returns the process exit code.
func run(in io.Reader, out io.Writer) int {
	// Load environment variables; a .env file is optional
	envErr := godotenv.Load()

	cfg := config.Load()
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}
	if envErr != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Pre-flight: nothing touches the network without a credential
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "[ERROR] %v. %s\n", err, credentialHint)
		return 1
	}

	var skeptic *core.Skeptic
	app := fx.New(
		appfx.Modules(cfg),
		fx.Populate(&skeptic),
		fx.WithLogger(func() fxevent.Logger {
			if cfg.Debug {
				return &fxevent.ConsoleLogger{W: log.Writer()}
			}
			return fxevent.NopLogger
		}),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(out, "[ERROR] Failed to initialize: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(out, "[ERROR] Failed to start: %v\n", err)
		return 1
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			log.Printf("[Main] Shutdown error: %v", err)
		}
	}()

	if err := skeptic.Run(ctx, in, out); err != nil {
		fmt.Fprintf(out, "[ERROR] %v\n", err)
	}
	return 0
}
