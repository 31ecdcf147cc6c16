// Package main wires the Hermes shipment-analytics agent together: config,
// dataset, tool registry, Gemini provider, and the Bubble Tea chat UI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/hermes-agent/hermes/internal/agent"
	"github.com/hermes-agent/hermes/internal/analysis"
	"github.com/hermes-agent/hermes/internal/config"
	"github.com/hermes-agent/hermes/internal/provider"
	"github.com/hermes-agent/hermes/internal/provider/gemini"
	"github.com/hermes-agent/hermes/internal/tools"
	"github.com/hermes-agent/hermes/internal/ui"
	uimodels "github.com/hermes-agent/hermes/internal/ui/models"
	uiservices "github.com/hermes-agent/hermes/internal/ui/services"
	"github.com/lmittmann/tint"
	"google.golang.org/genai"
)

// Dependencies holds the components required to run the application.
// Tests substitute mocks for the UI and provider factory.
type Dependencies struct {
	Config          *config.Config
	UI              ui.UserInterface
	ProviderFactory func(context.Context) (provider.Provider, error)
}

func createRealProviderFactory(cfg *config.Config) func(context.Context) (provider.Provider, error) {
	return func(ctx context.Context) (provider.Provider, error) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}

		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		return gemini.New(gemini.NewRealGeminiClient(genaiClient), gemini.Options{
			Model:           cfg.Provider.Model,
			Temperature:     float32(cfg.Provider.Temperature),
			MaxOutputTokens: int32(cfg.Provider.MaxOutputTokens),
		}), nil
	}
}

// setupLogging sends slog output to the configured log file. The TUI owns
// the terminal, so nothing may write to stdout or stderr while it runs.
func setupLogging(cfg *config.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(tint.NewHandler(f, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	})))
	return f, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file %s: %v\n", cfg.Log.File, err)
		os.Exit(1)
	}
	defer logFile.Close()

	dataset, err := analysis.LoadDataset(cfg.Data.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load dataset %s: %v\n", cfg.Data.File, err)
		os.Exit(1)
	}
	analyzer := analysis.NewAnalyzer(dataset)

	renderer := uiservices.NewGlamourRenderer()
	userInterface := ui.NewUI(renderer, uimodels.SidebarInfo{
		Model:          cfg.Provider.Model,
		Temperature:    cfg.Provider.Temperature,
		MaxTokens:      cfg.Provider.MaxOutputTokens,
		DatasetSummary: analyzer.DatasetSummary(),
	})

	deps := Dependencies{
		Config:          cfg,
		UI:              userInterface,
		ProviderFactory: createRealProviderFactory(cfg),
	}

	// NOTE: context.Background() is intentional for TUI mode. The UI manages
	// its own lifecycle via Ctrl+C, so no external cancellation is needed.
	runInteractive(context.Background(), deps, analyzer)
}

func runInteractive(ctx context.Context, deps Dependencies, analyzer *analysis.Analyzer) {
	userInterface := deps.UI

	agentCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	// REPL goroutine: one turn at a time against a single session.
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready()

		userInterface.WriteStatus("thinking", "Initializing AI...")

		p, err := deps.ProviderFactory(agentCtx)
		if err != nil {
			userInterface.WriteStatus("error", "AI initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error initializing provider: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return // Degraded mode: UI runs but the agent never starts
		}

		registry := tools.NewRegistry(analyzer)
		systemPrompt := agent.SystemPrompt(registry.Describe(), time.Now())
		a := agent.New(p, registry, systemPrompt)
		a.OnToolRound = func(count int) {
			userInterface.WriteStatus("analyzing", fmt.Sprintf("Analyzing data (%d tools)", count))
		}
		session := agent.NewSession()

		slog.Info("agent ready", "model", deps.Config.Provider.Model, "tools", len(registry.Names()))
		userInterface.WriteStatus("ready", "Ready")

		for {
			select {
			case <-agentCtx.Done():
				return
			default:
				input, err := userInterface.ReadInput(agentCtx, "Ask about your shipments")
				if err != nil {
					return // UI closed or context cancelled
				}

				userInterface.WriteStatus("thinking", "Thinking")
				history := session.History()
				session.AppendUser(input)

				result, err := a.ProcessMessage(agentCtx, input, history)
				if err != nil {
					// Record the failure in the transcript so the turn still
					// has an assistant entry, then surface it in the chat.
					slog.Error("turn failed", "error", err)
					errText := fmt.Sprintf("Error: %v", err)
					session.AppendAssistant(errText)
					userInterface.WriteMessage(errText)
					userInterface.WriteStatus("error", "Request failed")
					continue
				}

				session.AppendAssistant(result.FinalText)
				session.MergeTurn(result)
				for _, entry := range result.LogEntries {
					userInterface.WriteToolEvent(fmt.Sprintf("%s(%s)", entry.Tool, agent.FormatArgs(entry.Args)))
				}

				userInterface.WriteMessage(result.FinalText)
				userInterface.WriteStatus("ready", "Ready")
			}
		}
	}()

	// Run UI in the main goroutine (blocks until exit)
	if err := userInterface.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	cancel()
	wg.Wait()
}
