package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// RoomSeed describes one room to provision on first run against an
// empty registry. The default seed reproduces the demo fixture of the
// product: three rooms with 20, 50 and 30 seats.
type RoomSeed struct {
	Name     string // display name of the room
	Capacity uint32 // number of seats to create, numbered 1..Capacity
}

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Required variables are enforced by must()
// and missing values cause the program to exit with a fatal log message;
// the rest carry sensible defaults for local development.
type Config struct {
	Env            string     // application environment (e.g. "dev", "prod")
	Port           string     // HTTP port to listen on
	DBUser         string     // database username
	DBPass         string     // database password (optional)
	DBHost         string     // database host address
	DBPort         string     // database port number
	DBName         string     // database name
	JWTSecret      string     // secret used to sign access tokens
	AccessTTLMin   int        // access token time-to-live in minutes
	SessionTTLHrs  int        // opaque session time-to-live in hours
	BcryptCost     int        // bcrypt cost for password hashing
	EventsEnabled  bool       // publish seat updates to RabbitMQ when true
	SeedRooms      []RoomSeed // rooms provisioned on first run
}

// defaultSeed matches the original demo data: name:capacity pairs
// separated by semicolons.
const defaultSeed = "Room 204 (Lab):20;Library Study Hall:50;Room 101 (Lecture):30"

// Load reads configuration values from environment variables and
// returns a Config.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"), // empty allowed
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  getenvInt("ACCESS_TOKEN_TTL_MIN", 30),
		SessionTTLHrs: getenvInt("SESSION_TTL_HOURS", 24),
		BcryptCost:    getenvInt("BCRYPT_COST", 10),
		EventsEnabled: getenvBool("SEAT_EVENTS_ENABLED", false),
		SeedRooms:     parseSeedRooms(getenv("SEED_ROOMS", defaultSeed)),
	}
}

// parseSeedRooms parses "name:capacity" pairs separated by ";". Pairs
// with a missing name or a non-positive capacity are skipped; the seed
// is demo data, not something to crash over.
func parseSeedRooms(s string) []RoomSeed {
	var seeds []RoomSeed
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := strings.LastIndex(part, ":")
		if i <= 0 {
			continue
		}
		name := strings.TrimSpace(part[:i])
		n, err := strconv.Atoi(strings.TrimSpace(part[i+1:]))
		if err != nil || n <= 0 || name == "" {
			continue
		}
		seeds = append(seeds, RoomSeed{Name: name, Capacity: uint32(n)})
	}
	return seeds
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func getenvBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}
