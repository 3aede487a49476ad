package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"bariatric-gpt/backend/internal/api"
	"bariatric-gpt/backend/internal/config"
	"bariatric-gpt/backend/internal/database"
	"bariatric-gpt/backend/internal/llm"
	"bariatric-gpt/backend/internal/patient"
	"bariatric-gpt/backend/internal/repository"
	"bariatric-gpt/backend/internal/service"
)

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	llmProvider, err := newLLMProvider(cfg)
	if err != nil {
		slog.Error("Failed to configure model provider", "error", err)
		return 1
	}

	if cfg.LLMBackend == "ollama" {
		waitForOllama(cfg.OllamaURL)
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	repo := repository.NewSQLiteRepository(db)

	var patients patient.DataProvider
	if cfg.StorageServiceURL != "" {
		patients = patient.NewHTTPProvider(cfg.StorageServiceURL)
		slog.Info("Patient data served by remote storage service", "url", cfg.StorageServiceURL)
	} else {
		patients = patient.NewLocalProvider(repo)
	}

	settingsService := service.NewSettingsService(db, llmProvider)
	appSettings, err := settingsService.InitAndGet(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize application settings", "error", err)
		return 1
	}
	slog.Info("Loaded application settings", "main_model", appSettings.MainModel)

	chatService := service.NewChatService(repo, llmProvider, patients, settingsService, cfg.EnablePatientTools)
	profileService := service.NewProfileService(repo)
	modelService := service.NewModelService(llmProvider)

	chatHandler := api.NewChatHandler(chatService, profileService, settingsService)
	profileHandler := api.NewProfileHandler(profileService)
	modelHandler := api.NewModelHandler(modelService)
	router := api.NewRouter(chatHandler, profileHandler, modelHandler, cfg.ServiceKey)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled: chat turns wait on model generation.
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort, "patient_tools", cfg.EnablePatientTools)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func newLLMProvider(cfg *config.Config) (llm.LLMProvider, error) {
	switch cfg.LLMBackend {
	case "ollama":
		return llm.NewOllamaProvider(cfg.OllamaURL), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_BACKEND=openai")
		}
		return llm.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown LLM_BACKEND %q", cfg.LLMBackend)
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func waitForOllama(ollamaURL string) {
	slog.Info("Waiting for Ollama to be ready...")
	client := &http.Client{Timeout: 2 * time.Second}
	for {
		resp, err := client.Get(ollamaURL)
		if err == nil && resp.StatusCode == http.StatusOK {
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in ollama health check", "error", bErr)
			}
			slog.Info("Ollama is ready.")
			return
		}
		if resp != nil {
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in ollama health check (retry path)", "error", bErr)
			}
		}
		slog.Debug("Ollama not ready yet, retrying in 3 seconds...", "url", ollamaURL, "error", err)
		time.Sleep(3 * time.Second)
	}
}
