package main

import (
	"fmt"
	"os"

	"github.com/longregen/classroom/internal/config"
	"github.com/longregen/classroom/internal/llm"
	"github.com/longregen/classroom/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "classroom",
		Short: "Classroom backend - LiveKit tokens and AI answers",
		Long: `classroom issues LiveKit access tokens for class participants and relays
student questions to an OpenAI-compatible chat-completion API (Groq by default).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger, err = logging.New(cfg.Log.Mode)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			llmClient = llm.NewClient(
				cfg.LLM.URL,
				cfg.LLM.APIKey,
				cfg.LLM.Model,
				cfg.LLM.Temperature,
				cfg.LLM.Timeout,
			)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		tokenCmd(),
		askCmd(),
		configCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configCmd shows current configuration
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Current configuration:")
			fmt.Println()

			fmt.Println("LLM:")
			fmt.Printf("  URL:         %s\n", cfg.LLM.URL)
			fmt.Printf("  Model:       %s\n", cfg.LLM.Model)
			fmt.Printf("  Temperature: %.2f\n", cfg.LLM.Temperature)
			fmt.Printf("  Timeout:     %s\n", cfg.LLM.Timeout)
			fmt.Printf("  API Key:     %s\n", maskSecret(cfg.LLM.APIKey))
			fmt.Println()

			fmt.Println("LiveKit:")
			fmt.Printf("  URL:        %s\n", cfg.LiveKit.URL)
			fmt.Printf("  API Key:    %s\n", maskSecret(cfg.LiveKit.APIKey))
			fmt.Printf("  API Secret: %s\n", maskSecret(cfg.LiveKit.APISecret))
			fmt.Printf("  Token TTL:  %s\n", cfg.LiveKit.TokenTTL)
			fmt.Printf("  Status:     %s\n", boolStatus(cfg.IsLiveKitConfigured()))
			fmt.Println()

			fmt.Println("Server:")
			fmt.Printf("  Address:      %s\n", cfg.Addr())
			fmt.Printf("  CORS Origins: %v\n", cfg.Server.CORSOrigins)
			fmt.Printf("  Log Mode:     %s\n", cfg.Log.Mode)
			fmt.Printf("  Tracing:      %t\n", cfg.Tracing.Enabled)
			fmt.Println()

			fmt.Println("Environment variables:")
			fmt.Println("  GROQ_API_KEY, GROQ_BASE_URL, GROQ_MODEL, GROQ_TEMPERATURE, GROQ_TIMEOUT")
			fmt.Println("  LIVEKIT_URL, LIVEKIT_API_KEY, LIVEKIT_API_SECRET, LIVEKIT_TOKEN_TTL")
			fmt.Println("  SERVER_HOST, PORT, CORS_ORIGINS, LOG_MODE, TRACING_ENABLED, CLASSROOM_CONFIG")

			return nil
		},
	}
}

// versionCmd shows version information
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("classroom %s\n", version)
			fmt.Printf("  Commit:     %s\n", commit)
			fmt.Printf("  Build Date: %s\n", buildDate)
		},
	}
}
