package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shlvgit07/basmach/internal/app"
	"github.com/shlvgit07/basmach/internal/assistant"
	"github.com/shlvgit07/basmach/internal/llm"
	"github.com/shlvgit07/basmach/internal/questiongen"
	"github.com/shlvgit07/basmach/internal/selfupdate"
	"github.com/shlvgit07/basmach/internal/store"
	"github.com/spf13/cobra"
)

// services are the LLM-backed dependencies shared by the front ends.
type services struct {
	store     *store.Store
	generator questiongen.Generator
	assistant *assistant.Service
}

func (s *services) Close() error {
	return s.store.Close()
}

// openServices opens the store and builds the provider stack. A missing
// provider is not fatal: the front ends run without question generation
// and chat answers with the fallback reply.
func openServices(cmd *cobra.Command) (*services, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	svc := &services{store: st}
	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "warning: question generation and chat will be unavailable.")
		svc.assistant = assistant.New(nil, assistant.DefaultConfig())
		return svc, nil
	}

	svc.generator = questiongen.New(provider, questiongen.DefaultConfig())
	svc.assistant = assistant.New(provider, assistant.DefaultConfig())
	return svc, nil
}

// runApp opens the services and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	count, _ := cmd.Flags().GetInt("count")
	opts := app.Options{
		Generator: svc.generator,
		Assistant: svc.assistant,
		ChatLimit: assistant.DefaultConfig().MaxMessageRunes,
		Count:     count,
	}

	if skip, _ := cmd.Flags().GetBool("no-update-check"); !skip {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		opts.LatestVersion = selfupdate.NewChecker(selfupdate.WithTimeout(2*time.Second)).LatestVersion(ctx, version)
		cancel()
	}

	return app.Run(opts)
}
