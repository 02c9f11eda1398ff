package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	Scoring  Scoring
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Scoring holds the grading policy and embedding provider settings.
type Scoring struct {
	// Provider selects the embedding backend: "openai" (default) or "gemini".
	Provider            string
	OpenAIAPIKey        string
	OpenAIModel         string
	GeminiAPIKey        string
	GeminiModel         string
	EmbedTimeoutSeconds int
	PassPercentage      float64
	MaxCheatingWarnings int
	// CountUnanswered keeps unanswered questions in the attempt's total
	// marks so they count against the student.
	CountUnanswered bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SCORING_PROVIDER", "openai")
	viper.SetDefault("OPENAI_EMBED_MODEL", "text-embedding-ada-002")
	viper.SetDefault("GEMINI_EMBED_MODEL", "text-embedding-004")
	viper.SetDefault("EMBED_TIMEOUT_SECONDS", 15)
	viper.SetDefault("PASS_PERCENTAGE", 50.0)
	viper.SetDefault("MAX_CHEATING_WARNINGS", 3)
	viper.SetDefault("COUNT_UNANSWERED", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.Scoring.Provider = viper.GetString("SCORING_PROVIDER")
	config.Scoring.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	config.Scoring.OpenAIModel = viper.GetString("OPENAI_EMBED_MODEL")
	config.Scoring.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	config.Scoring.GeminiModel = viper.GetString("GEMINI_EMBED_MODEL")
	config.Scoring.EmbedTimeoutSeconds = viper.GetInt("EMBED_TIMEOUT_SECONDS")
	config.Scoring.PassPercentage = viper.GetFloat64("PASS_PERCENTAGE")
	config.Scoring.MaxCheatingWarnings = viper.GetInt("MAX_CHEATING_WARNINGS")
	config.Scoring.CountUnanswered = viper.GetBool("COUNT_UNANSWERED")

	log.Info().Str("port", config.Server.Port).Str("provider", config.Scoring.Provider).Msg("Config loaded")
	return &config, nil
}
