package config

import (
	"log"
	"os"
	"strings"
	"time"
)

type Config struct {
	DBPath        string
	TelegramToken string
	Location      *time.Location
}

func Load() Config {
	return Config{
		DBPath:        envOr("REMINDER_DB", defaultDBPath),
		TelegramToken: getBotToken(),
		Location:      getLocation(),
	}
}

func getBotToken() string {
	if data, err := os.ReadFile("/run/secrets/telegram_bot_token"); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token
		}
	}
	if token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")); token != "" {
		return token
	}
	log.Fatal("token not found: neither Docker secret nor TELEGRAM_BOT_TOKEN is set")
	return ""
}

// getLocation picks the zone every moment is resolved in. Reminders are
// wall-clock times for the user, never UTC.
func getLocation() *time.Location {
	tz := strings.TrimSpace(os.Getenv("REMINDER_TZ"))
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("invalid REMINDER_TZ %q, using local zone", tz)
		return time.Local
	}
	return loc
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

const defaultDBPath = "reminders.db"
