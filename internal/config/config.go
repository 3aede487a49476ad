package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration. The patient-tools flag is part
// of the config on purpose: it is handed to the pipeline at construction
// so tests can toggle it per instance without shared state.
type Config struct {
	AppPort            int    `mapstructure:"APP_PORT"`
	DatabasePath       string `mapstructure:"DATABASE_PATH"`
	LLMBackend         string `mapstructure:"LLM_BACKEND"`
	OllamaURL          string `mapstructure:"OLLAMA_URL"`
	OpenAIAPIKey       string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL      string `mapstructure:"OPENAI_BASE_URL"`
	MainModel          string `mapstructure:"MAIN_MODEL"`
	SupportModel       string `mapstructure:"SUPPORT_MODEL"`
	SystemPrompt       string `mapstructure:"SYSTEM_PROMPT"`
	EnablePatientTools bool   `mapstructure:"ENABLE_PATIENT_TOOLS"`
	StorageServiceURL  string `mapstructure:"STORAGE_SERVICE_URL"`
	ServiceKey         string `mapstructure:"SERVICE_KEY"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/bariatric.db")
	viper.SetDefault("LLM_BACKEND", "ollama")
	viper.SetDefault("OLLAMA_URL", "http://ollama:11434")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("MAIN_MODEL", "llama3.2:3b")
	viper.SetDefault("SUPPORT_MODEL", "llama3.2:3b")
	viper.SetDefault("SYSTEM_PROMPT",
		"You are 'Bariatric GPT', a helpful assistant for bariatric surgery and weight management. "+
			"Be concise, professional, and helpful. Remind users that this is general guidance, "+
			"not a substitute for their care team.")
	viper.SetDefault("ENABLE_PATIENT_TOOLS", false)
	viper.SetDefault("STORAGE_SERVICE_URL", "")
	viper.SetDefault("SERVICE_KEY", "")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
