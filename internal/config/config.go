package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/internal/pricing"
)

// Config is the full service configuration, loaded from config.toml
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Stripe      StripeConfig      `toml:"stripe"`
	GoHighLevel GoHighLevelConfig `toml:"gohighlevel"`
	Formspree   FormspreeConfig   `toml:"formspree"`
	Booking     BookingConfig     `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	AdminToken      string `toml:"admin_token"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled           bool   `toml:"enabled"`
	Path              string `toml:"path"`
	ServiceName       string `toml:"service_name"`
	PoolStatsInterval int    `toml:"pool_stats_interval"`
}

type StripeConfig struct {
	SecretKey string `toml:"secret_key"`
	Currency  string `toml:"currency"`
}

type GoHighLevelConfig struct {
	Enabled    bool   `toml:"enabled"`
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	LocationID string `toml:"location_id"`
	Timeout    int    `toml:"timeout"`
}

type FormspreeConfig struct {
	Enabled bool   `toml:"enabled"`
	FormURL string `toml:"form_url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig holds the booking rules and the static room catalog.
// RestrictedHours is an explicit flag: a full-day window is configured, not
// inferred from open/close values.
type BookingConfig struct {
	MinBookingHours int          `toml:"min_booking_hours"`
	RestrictedHours bool         `toml:"restricted_hours"`
	OpenHour        int          `toml:"open_hour"`
	CloseHour       int          `toml:"close_hour"`
	Rooms           []RoomConfig `toml:"rooms"`
}

type RoomConfig struct {
	ID                  string  `toml:"id"`
	DisplayName         string  `toml:"display_name"`
	Color               string  `toml:"color"`
	Capacity            int     `toml:"capacity"`
	EngineerName        string  `toml:"engineer_name"`
	EngineerID          string  `toml:"engineer_id"`
	RateWithEngineer    float64 `toml:"rate_with_engineer"`
	RateWithoutEngineer float64 `toml:"rate_without_engineer"`
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Booking.MinBookingHours <= 0 {
		cfg.Booking.MinBookingHours = domain.DefaultMinBookingHours
	}
	if len(cfg.Booking.Rooms) == 0 {
		return nil, fmt.Errorf("config: no rooms configured")
	}
	if cfg.Booking.RestrictedHours {
		if cfg.Booking.OpenHour < 0 || cfg.Booking.CloseHour > 24 || cfg.Booking.OpenHour >= cfg.Booking.CloseHour {
			return nil, fmt.Errorf("config: invalid business hours %d..%d", cfg.Booking.OpenHour, cfg.Booking.CloseHour)
		}
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = "usd"
	}

	return &cfg, nil
}

// Rooms builds the static room list for the registry
func (c *Config) Rooms() []domain.Room {
	rooms := make([]domain.Room, 0, len(c.Booking.Rooms))
	for _, rc := range c.Booking.Rooms {
		rooms = append(rooms, domain.Room{
			ID:              domain.RoomID(rc.ID),
			DisplayName:     rc.DisplayName,
			Color:           rc.Color,
			Capacity:        rc.Capacity,
			DefaultEngineer: rc.EngineerName,
			EngineerID:      rc.EngineerID,
		})
	}
	return rooms
}

// Rates builds the pricing table input
func (c *Config) Rates() map[domain.RoomID]pricing.Rate {
	rates := make(map[domain.RoomID]pricing.Rate, len(c.Booking.Rooms))
	for _, rc := range c.Booking.Rooms {
		rates[domain.RoomID(rc.ID)] = pricing.Rate{
			WithEngineer:    rc.RateWithEngineer,
			WithoutEngineer: rc.RateWithoutEngineer,
		}
	}
	return rates
}
