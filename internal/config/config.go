package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenAddr      string
	OpsAddr         string
	SerialPort      string
	SerialBaud      int
	DisplayInterval time.Duration
	AllowedSubnets  []string
}

func LoadFromEnv() Config {
	return Config{
		ListenAddr:      env("LISTEN_ADDR", "0.0.0.0:8080"),
		OpsAddr:         envOpt("OPS_ADDR", "127.0.0.1:9090"),
		SerialPort:      env("SERIAL_PORT", ""),
		SerialBaud:      envInt("SERIAL_BAUD", 115200),
		DisplayInterval: envDuration("DISPLAY_INTERVAL", 2*time.Second),
		AllowedSubnets:  splitCSV(env("ALLOWED_SUBNETS", "")),
	}
}

func env(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// envOpt is env for features that can be switched off: unset keeps the
// default, while an explicitly empty value or "off" yields "" (disabled).
func envOpt(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "off") {
		return ""
	}
	return v
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
