package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr            string        // API bind address, e.g., "127.0.0.1:8080" (Windows) or ":8080" (Docker)
	LogDir          string        // logs directory
	PublicAPIKeys   []string      // keys allowed on single-check routes
	AdminAPIKeys    []string      // keys allowed on batch routes
	AllowedOrigins  []string      // CORS origins; empty means allow all
	RateLimitPerMin int           // requests per minute per client IP; 0 disables
	RateLimitBurst  int           // token bucket burst
	CheckTimeout    time.Duration // default per-check HTTP timeout
	FollowRedirects bool          // default redirect policy
	Concurrency     int           // batch workers; 1 means sequential
}

func FromEnv() Config {
	// Bind address (Windows-friendly default)
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	timeout := 10 * time.Second
	if v := os.Getenv("CHECK_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	follow := true
	if v := os.Getenv("FOLLOW_REDIRECTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			follow = b
		}
	}

	concurrency := 1
	if v := os.Getenv("CHECK_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	rpm := 120
	if v := os.Getenv("RATE_LIMIT_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			rpm = n
		}
	}
	burst := 60
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}

	return Config{
		Addr:            addr,
		LogDir:          logDir,
		PublicAPIKeys:   splitList(os.Getenv("PUBLIC_API_KEYS")),
		AdminAPIKeys:    splitList(os.Getenv("ADMIN_API_KEYS")),
		AllowedOrigins:  splitList(os.Getenv("ALLOWED_ORIGINS")),
		RateLimitPerMin: rpm,
		RateLimitBurst:  burst,
		CheckTimeout:    timeout,
		FollowRedirects: follow,
		Concurrency:     concurrency,
	}
}

// splitList parses a comma-separated env value, dropping empties.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
