package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Rewards     RewardsConfig  `mapstructure:"rewards"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// RewardsConfig contains the gamification tunables
type RewardsConfig struct {
	WelcomeCredit        int64         `mapstructure:"welcomeCredit"`
	BonusBaseAmount      int64         `mapstructure:"bonusBaseAmount"`
	BonusStreakStep      int64         `mapstructure:"bonusStreakStep"`
	LoginPenaltyPerDay   int64         `mapstructure:"loginPenaltyPerDay"`
	QuizPenaltyPerDay    int64         `mapstructure:"quizPenaltyPerDay"`
	CoinsPerCorrect      int64         `mapstructure:"coinsPerCorrect"`
	LeaderboardSize      int           `mapstructure:"leaderboardSize"`
	LeaderboardInterval  time.Duration `mapstructure:"leaderboardInterval"` // seconds
	DayBoundaryTimezone  string        `mapstructure:"dayBoundaryTimezone"`
}
