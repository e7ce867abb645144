package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shlvgit07/basmach/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz over a local JSON API",
	Long: `Run the quiz flow behind an HTTP JSON API under /api so a browser
client can drive it. State is held in memory for a single learner.`,
	RunE: runServe,
}

func init() {
	def := server.DefaultConfig()
	serveCmd.Flags().String("addr", def.Addr, "Listen address")
	serveCmd.Flags().Int("count", 0, "Questions per quiz (default 5)")
	serveCmd.Flags().Int("chat-per-minute", def.ChatPerMinute, "Chat requests allowed per client per minute")
	serveCmd.Flags().Duration("generate-timeout", def.GenerateTimeout, "Timeout for one question generation request")
	serveCmd.Flags().Bool("quiet", false, "Disable the access log")
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	cfg := server.DefaultConfig()
	cfg.Addr, _ = cmd.Flags().GetString("addr")
	cfg.Count, _ = cmd.Flags().GetInt("count")
	cfg.ChatPerMinute, _ = cmd.Flags().GetInt("chat-per-minute")
	cfg.GenerateTimeout, _ = cmd.Flags().GetDuration("generate-timeout")
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		cfg.AccessLog = false
	}

	srv := server.New(cfg, svc.generator, svc.assistant)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen() }()
	fmt.Printf("basmach API listening on http://%s\n", cfg.Addr)

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	fmt.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
