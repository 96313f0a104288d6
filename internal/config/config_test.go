package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminalstudios/booking-service/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080
admin_token = "secret"

[database]
host = "localhost"
port = 5432
user = "booking"
password = "booking"
dbname = "booking"
sslmode = "disable"

[logs]
level = "info"

[stripe]
secret_key = "sk_test"

[booking]
min_booking_hours = 2
restricted_hours = false

[[booking.rooms]]
id = "terminal-a"
display_name = "Terminal A"
engineer_name = "Murda"
engineer_id = "engineer-murda"
rate_with_engineer = 80.0
rate_without_engineer = 40.0
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "secret", cfg.Server.AdminToken)
	assert.Equal(t, "usd", cfg.Stripe.Currency, "currency defaults to usd")
	assert.Equal(t, 2, cfg.Booking.MinBookingHours)

	rooms := cfg.Rooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, domain.RoomID("terminal-a"), rooms[0].ID)
	assert.Equal(t, "Murda", rooms[0].DefaultEngineer)

	rates := cfg.Rates()
	assert.Equal(t, 80.0, rates["terminal-a"].WithEngineer)
	assert.Equal(t, 40.0, rates["terminal-a"].WithoutEngineer)
}

func TestLoad_DefaultMinBookingHours(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[booking]
[[booking.rooms]]
id = "terminal-a"
`))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMinBookingHours, cfg.Booking.MinBookingHours)
}

func TestLoad_NoRooms(t *testing.T) {
	_, err := Load(writeConfig(t, `
[server]
http_port = 8080
`))
	assert.Error(t, err)
}

func TestLoad_InvalidBusinessHours(t *testing.T) {
	_, err := Load(writeConfig(t, `
[booking]
restricted_hours = true
open_hour = 22
close_hour = 10

[[booking.rooms]]
id = "terminal-a"
`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "booking", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=booking sslmode=disable", d.DSN())
}
