// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	admin := strings.TrimSpace(os.Getenv("ADMIN_API_KEYS"))
	pub := strings.TrimSpace(os.Getenv("PUBLIC_API_KEYS"))
	apiAddr := strings.TrimSpace(os.Getenv("ADDR"))
	allowed := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	timeout := strings.TrimSpace(os.Getenv("CHECK_TIMEOUT_SECONDS"))
	conc := strings.TrimSpace(os.Getenv("CHECK_CONCURRENCY"))

	if admin == "" {
		fail("ADMIN_API_KEYS is empty (batch check routes will 403).")
	}
	if pub == "" {
		fail("PUBLIC_API_KEYS is empty (check routes will 401).")
	}

	// Normalize and sanity-check lists (no spaces around commas).
	for name, v := range map[string]string{"ADMIN_API_KEYS": admin, "PUBLIC_API_KEYS": pub} {
		if strings.Contains(v, " ") {
			warn(name + " contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
	}

	if apiAddr == "" {
		warn("ADDR is empty; default in your app may be used.")
	} else {
		ok("ADDR=" + apiAddr)
	}

	if timeout != "" {
		if n, err := strconv.Atoi(timeout); err != nil || n <= 0 {
			warn("CHECK_TIMEOUT_SECONDS is not a positive integer; the default of 10 will be used.")
		} else {
			ok("CHECK_TIMEOUT_SECONDS=" + timeout)
		}
	}

	if conc != "" {
		if n, err := strconv.Atoi(conc); err != nil || n < 1 {
			warn("CHECK_CONCURRENCY is not a positive integer; checks will run sequentially.")
		} else {
			ok("CHECK_CONCURRENCY=" + conc)
		}
	}

	if allowed == "" {
		warn("ALLOWED_ORIGINS empty — browser will be blocked by CORS for cross-origin requests.")
	} else {
		ok("ALLOWED_ORIGINS=" + allowed)
	}

	ok("preflight passed")
}
