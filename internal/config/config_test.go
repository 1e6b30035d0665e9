package config

import (
	"os"
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("PUBLIC_API_KEYS", "pub_a,pub_b")
	t.Setenv("ADMIN_API_KEYS", "adm_x")
	t.Setenv("CHECK_TIMEOUT_SECONDS", "30")
	t.Setenv("FOLLOW_REDIRECTS", "false")
	t.Setenv("CHECK_CONCURRENCY", "7")
	t.Setenv("RATE_LIMIT_PER_MIN", "111")
	t.Setenv("RATE_LIMIT_BURST", "22")

	cfg := FromEnv()

	if cfg.Addr != ":9090" || cfg.LogDir != "./_testlogs" {
		t.Fatalf("addr/logdir wrong: %+v", cfg)
	}
	if len(cfg.PublicAPIKeys) != 2 || cfg.PublicAPIKeys[0] != "pub_a" {
		t.Fatalf("public keys wrong: %+v", cfg.PublicAPIKeys)
	}
	if len(cfg.AdminAPIKeys) != 1 || cfg.AdminAPIKeys[0] != "adm_x" {
		t.Fatalf("admin keys wrong: %+v", cfg.AdminAPIKeys)
	}
	if cfg.CheckTimeout != 30*time.Second {
		t.Fatalf("timeout wrong: %v", cfg.CheckTimeout)
	}
	if cfg.FollowRedirects {
		t.Fatalf("expected redirects disabled")
	}
	if cfg.Concurrency != 7 {
		t.Fatalf("concurrency wrong: %d", cfg.Concurrency)
	}
	if cfg.RateLimitPerMin != 111 || cfg.RateLimitBurst != 22 {
		t.Fatalf("rate limit wrong: %+v", cfg)
	}

	// ensure defaults don’t crash if missing env
	os.Unsetenv("ADDR")
	_ = FromEnv()
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"ADDR", "LOG_DIR", "PUBLIC_API_KEYS", "ADMIN_API_KEYS",
		"CHECK_TIMEOUT_SECONDS", "FOLLOW_REDIRECTS", "CHECK_CONCURRENCY",
		"RATE_LIMIT_PER_MIN", "RATE_LIMIT_BURST", "ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	if cfg.CheckTimeout != 10*time.Second {
		t.Fatalf("default timeout wrong: %v", cfg.CheckTimeout)
	}
	if !cfg.FollowRedirects {
		t.Fatalf("redirects should default on")
	}
	if cfg.Concurrency != 1 {
		t.Fatalf("default concurrency should be sequential, got %d", cfg.Concurrency)
	}
	if len(cfg.PublicAPIKeys) != 0 || len(cfg.AdminAPIKeys) != 0 {
		t.Fatalf("keys should default empty: %+v", cfg)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b ,c")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("splitList wrong: %+v", got)
	}
	if splitList("") != nil {
		t.Fatalf("empty input should yield nil")
	}
}
