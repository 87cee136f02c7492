package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rttlabs/rtt/internal/config"
	"github.com/rttlabs/rtt/internal/shell"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("rtt: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file; absence is fine, the system environment still applies.
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	root := &cobra.Command{
		Use:   "rtt",
		Short: "rtt — a reverse Turing test against LLM agents",
		Long: "An interactive game in which you and an LLM-driven player both answer\n" +
			"questions from an LLM-driven interrogator, which then guesses which of\n" +
			"you is the human.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), cfg)
		},
	}

	return root.ExecuteContext(ctx)
}

func runShell(ctx context.Context, cfg *config.Config) error {
	var client model.BaseChatModel
	if cfg.AI.APIKey != "" {
		var err error
		client, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize completion client: %v", err)
			client = nil
		}
	}

	sh := shell.New(cfg, client, os.Stdin, os.Stdout)

	// The shell blocks on terminal reads, so the interrupt signal is handled
	// here rather than inside the loop: on SIGINT the context cancels any
	// in-flight completion and the process exits cleanly.
	errCh := make(chan error, 1)
	go func() {
		errCh <- sh.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		fmt.Println("\nexiting")
		return nil
	case err := <-errCh:
		return err
	}
}
