package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is a per-route request budget. Limit tokens refill evenly over
// Window; Burst caps how many can be spent back-to-back (Limit when zero).
// A Limit of zero or less means the route is unlimited.
type Rule struct {
	Path   string // exact path, or a "/"-suffixed prefix
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Policy is the limiter's full configuration.
type Policy struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	AllowList       map[string]struct{} // client IDs that bypass limiting
	DenyList        map[string]struct{} // client IDs that are always refused
	Rules           []Rule
}

// DefaultRules returns the per-route budgets for the parse API.
func DefaultRules() []Rule {
	return []Rule{
		// URL ingestion can hit a headless browser and the LLM hint path,
		// so parsing is the strictest tier.
		{Path: "/parse", Method: "POST", Limit: 60, Window: time.Hour, Burst: 5},

		// Brute-force protection on login.
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Profile deletion; one budget shared across IDs per client.
		{Path: "/profiles/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads fall through to the default limit; /health is unlimited via
		// the ruleFor special case.
	}
}

func defaultPolicy() *Policy {
	return &Policy{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		AllowList:       map[string]struct{}{},
		DenyList:        map[string]struct{}{},
		Rules:           DefaultRules(),
	}
}

// FromEnv builds a Policy from RATE_LIMIT_* environment variables, falling
// back to the defaults for anything unset or unparseable.
func FromEnv() *Policy {
	if !envOr("RATE_LIMIT_ENABLED", strconv.ParseBool, true) {
		return &Policy{Enabled: false}
	}

	p := defaultPolicy()
	p.DefaultLimit = envOr("RATE_LIMIT_DEFAULT_LIMIT", strconv.Atoi, p.DefaultLimit)
	p.DefaultWindow = envOr("RATE_LIMIT_DEFAULT_WINDOW", time.ParseDuration, p.DefaultWindow)
	p.CleanupInterval = envOr("RATE_LIMIT_CLEANUP_INTERVAL", time.ParseDuration, p.CleanupInterval)
	p.AllowList = splitClientList(os.Getenv("RATE_LIMIT_ALLOWLIST"))
	p.DenyList = splitClientList(os.Getenv("RATE_LIMIT_DENYLIST"))
	return p
}

// ruleFor finds the Rule governing a path and method. Exact matches win over
// prefix matches; unmatched routes get the policy default.
func (p *Policy) ruleFor(path, method string) Rule {
	if path == "/health" && method == "GET" {
		return Rule{} // unlimited
	}

	for _, r := range p.Rules {
		if r.Path == path && r.Method == method {
			return r
		}
	}
	for _, r := range p.Rules {
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}

	return Rule{
		Path:   path,
		Method: method,
		Limit:  p.DefaultLimit,
		Window: p.DefaultWindow,
		Burst:  p.DefaultLimit,
	}
}

func envOr[T any](key string, parse func(string) (T, error), fallback T) T {
	if raw := os.Getenv(key); raw != "" {
		if v, err := parse(raw); err == nil {
			return v
		}
	}
	return fallback
}

// splitClientList parses a comma-separated list of client IDs into a set.
func splitClientList(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}
