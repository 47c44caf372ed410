package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/linkping/linkping/internal/config"
	"github.com/linkping/linkping/internal/logger"
	"github.com/linkping/linkping/internal/poller"
	"github.com/linkping/linkping/internal/service"
	"github.com/linkping/linkping/internal/shortener"
	"github.com/linkping/linkping/internal/store/memory"
	"github.com/linkping/linkping/internal/telegram"
	httpTransport "github.com/linkping/linkping/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "linkping",
	Short: "A link shortener with visitor notifications over Telegram",
	Long:  "A link-redirection service driven by a Telegram bot: /shorten a URL in chat, share the short link, get notified on every visit",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the redirect server and the update poller",
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringP("port", "p", "3000", "HTTP listen port")
	serverCmd.Flags().String("base-url", "", "public base URL for short links (default http://localhost:<port>)")
	serverCmd.Flags().String("token", "", "Telegram bot token")
	serverCmd.Flags().String("telegram-api-url", "https://api.telegram.org", "Telegram Bot API base URL")
	serverCmd.Flags().Duration("poll-timeout", 10*time.Second, "server-side long-poll wait for getUpdates")
	serverCmd.Flags().Duration("retry-backoff", time.Second, "wait before retrying a failed update fetch")
	serverCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	serverCmd.Flags().Bool("log-json", false, "emit JSON logs instead of console output")

	rootCmd.AddCommand(serverCmd)
}

// flagOrEnv returns the flag value unless the flag was left at its default
// and the environment variable is set
func flagOrEnv(cmd *cobra.Command, flag, envVar string) string {
	value, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) {
		if env := os.Getenv(envVar); env != "" {
			return env
		}
	}
	return value
}

func runServer(cmd *cobra.Command, args []string) error {
	// Optional .env file; its values surface through os.Getenv below
	_ = godotenv.Load()

	port := flagOrEnv(cmd, "port", "PORT")
	baseURL := flagOrEnv(cmd, "base-url", "BASE_URL")
	token := flagOrEnv(cmd, "token", "TELEGRAM_BOT_TOKEN")
	apiURL := flagOrEnv(cmd, "telegram-api-url", "TELEGRAM_API_URL")
	pollTimeout, _ := cmd.Flags().GetDuration("poll-timeout")
	retryBackoff, _ := cmd.Flags().GetDuration("retry-backoff")
	logLevel, _ := cmd.Flags().GetString("log-level")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	cfg, err := config.New(port, baseURL, token, apiURL, pollTimeout, retryBackoff, logLevel, logJSON)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	appLog := logger.New(cfg.Logging.Level, cfg.Logging.JSON)

	if cfg.Telegram.Token == "" {
		// Deliberately not fatal: the redirect side still serves, the bot
		// side will fail per call until a token is provided.
		appLog.Error().Msg("TELEGRAM_BOT_TOKEN is not set, bot commands and notifications will fail")
	} else {
		appLog.Info().Msg("bot token set")
	}

	linkStore := memory.New()
	generator := shortener.NewRandomGenerator()
	appLog.Info().Str("type", generator.Type()).Msg("using identifier generator")

	client := telegram.NewClient(cfg.Telegram.APIURL, cfg.Telegram.Token, cfg.Telegram.PollTimeout)
	links := service.NewLinkService(linkStore, generator, client, appLog)

	// Exactly one poller instance: offset-based polling is unsafe for
	// concurrent pollers sharing a cursor.
	pollCtx, stopPoller := context.WithCancel(context.Background())
	defer stopPoller()

	updatePoller := poller.New(client, links, client, cfg.Server.BaseURL, cfg.Telegram.RetryBackoff, appLog)
	go updatePoller.Run(pollCtx)

	server := httpTransport.NewServer(links, cfg.Server.Port, appLog)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		appLog.Info().Str("port", cfg.Server.Port).Str("base_url", cfg.Server.BaseURL).Msg("server starting")
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		appLog.Info().Str("signal", sig.String()).Msg("shutting down")

		stopPoller()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLog.Error().Err(err).Msg("error during server shutdown")
		}
	}

	appLog.Info().Msg("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
