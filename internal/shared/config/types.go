package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Mode     string `mapstructure:"mode" validate:"oneof=debug release test"`
	Timezone string `mapstructure:"timezone"`
	BaseURL  string `mapstructure:"base_url"`
}

// IsDebug reports whether verbose source locations should be logged.
func (s *ServerConfig) IsDebug() bool {
	return s.Mode == "debug"
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// GetDSN returns the driver specific data source name. For sqlite the
// database field is the file path (or ":memory:").
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host" validate:"required_if=Enabled true"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address" validate:"omitempty,email"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type DedupConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	TTLHours int  `mapstructure:"ttl_hours" validate:"gte=1"`
}

func (d *DedupConfig) TTL() time.Duration {
	return time.Duration(d.TTLHours) * time.Hour
}

type NotifierConfig struct {
	// ReminderDays lists how many days before a deadline a reminder goes out.
	ReminderDays []int       `mapstructure:"reminder_days" validate:"min=1,dive,gte=0"`
	Dedup        DedupConfig `mapstructure:"dedup"`
}

type SchedulerConfig struct {
	Cron           string `mapstructure:"cron" validate:"required"`
	TimeoutMinutes int    `mapstructure:"timeout_minutes" validate:"gte=1"`
}

func (s *SchedulerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutMinutes) * time.Minute
}

type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}
