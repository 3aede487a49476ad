package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"bariatric-gpt/backend/internal/config"
	app_errors "bariatric-gpt/backend/internal/errors"
	"bariatric-gpt/backend/internal/llm"
)

// Settings holds the dynamic application settings stored in the settings table.
type Settings struct {
	SystemPrompt string `json:"system_prompt"`
	MainModel    string `json:"main_model"`
	SupportModel string `json:"support_model"`
}

type SettingsService struct {
	db  *sql.DB
	llm llm.LLMProvider
}

func NewSettingsService(db *sql.DB, llmProvider llm.LLMProvider) *SettingsService {
	return &SettingsService{db: db, llm: llmProvider}
}

// InitAndGet loads stored settings, seeding them from config defaults on
// first run. When the model runtime is reachable, the first installed
// model is preferred over the configured default.
func (s *SettingsService) InitAndGet(ctx context.Context, cfg *config.Config) (*Settings, error) {
	settings, err := s.Get(ctx)
	if err == nil {
		slog.Info("Found existing settings in database.")
		return settings, nil
	}
	if err != app_errors.ErrNotFound {
		return nil, fmt.Errorf("could not load settings: %w", err)
	}

	slog.Info("No settings found. Performing smart initialization...")
	defaultModel := cfg.MainModel
	models, err := s.llm.ListModels(ctx)
	if err != nil {
		slog.Warn("Could not reach model runtime during init, using configured default", "error", err)
	} else if len(models.Models) == 0 {
		slog.Warn("Model runtime has no installed models, using configured default")
	} else {
		defaultModel = models.Models[0].Name
		slog.Info("Automatically selected default model", "model", defaultModel)
	}

	initial := &Settings{
		SystemPrompt: cfg.SystemPrompt,
		MainModel:    defaultModel,
		SupportModel: cfg.SupportModel,
	}
	if initial.SupportModel == "" {
		initial.SupportModel = defaultModel
	}

	if err := s.save(ctx, initial); err != nil {
		return nil, fmt.Errorf("could not save initial settings: %w", err)
	}
	slog.Info("Initialized application settings", "main_model", initial.MainModel)
	return initial, nil
}

// Get retrieves the current settings from the settings table.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if values["main_model"] == "" {
		return nil, app_errors.ErrNotFound
	}

	return &Settings{
		SystemPrompt: values["system_prompt"],
		MainModel:    values["main_model"],
		SupportModel: values["support_model"],
	}, nil
}

// Save validates the chosen models against the runtime when possible, then persists.
func (s *SettingsService) Save(ctx context.Context, settings *Settings) error {
	available, err := s.llm.ListModels(ctx)
	if err != nil {
		slog.Warn("Could not list models for validation, saving settings without check", "error", err)
	} else {
		names := make([]string, len(available.Models))
		for i, m := range available.Models {
			names[i] = m.Name
		}
		if !slices.Contains(names, settings.MainModel) {
			return fmt.Errorf("%w: main model '%s' is not installed", app_errors.ErrValidation, settings.MainModel)
		}
		if !slices.Contains(names, settings.SupportModel) {
			return fmt.Errorf("%w: support model '%s' is not installed", app_errors.ErrValidation, settings.SupportModel)
		}
	}
	return s.save(ctx, settings)
}

func (s *SettingsService) save(ctx context.Context, settings *Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	for key, value := range map[string]string{
		"system_prompt": settings.SystemPrompt,
		"main_model":    settings.MainModel,
		"support_model": settings.SupportModel,
	} {
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("could not save setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}
