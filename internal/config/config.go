package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	BoardSize         int
	ShipsPerSide      int
	MaxShipSize       int
	MatchWorkers      int
	SinkPointsPerCell int // scoring policy: points awarded per cell of a sunk piece
	Cycles            int // full round-robin repetitions
	FleetFile         string
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		BoardSize:         getEnvInt("BOARD_SIZE", 10),
		ShipsPerSide:      getEnvInt("SHIPS_PER_SIDE", 3),
		MaxShipSize:       getEnvInt("MAX_SHIP_SIZE", 3),
		MatchWorkers:      getEnvInt("MATCH_WORKERS", 4),
		SinkPointsPerCell: getEnvInt("SINK_POINTS_PER_CELL", 2),
		Cycles:            getEnvInt("CYCLES", 1),
		FleetFile:         os.Getenv("FLEET_FILE"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
