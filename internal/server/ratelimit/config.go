package ratelimit

import (
	"strconv"
	"strings"
	"time"
)

// Rule limits requests to one endpoint.
type Rule struct {
	Path   string        // Exact path, or a prefix when it ends with "/"
	Method string        // HTTP method
	Limit  int           // Requests per Window
	Window time.Duration // Refill window
	Burst  int           // Bucket capacity (defaults to Limit if 0)
}

func (r *Rule) burst() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration
	Exempt          map[string]bool
	Rules           []Rule
}

// DefaultConfig limits PDF export to exportPerMinute requests per client and rendering to a
// generous budget. Everything else is unlimited. A non-positive exportPerMinute uses 10.
func DefaultConfig(exportPerMinute int) *Config {
	if exportPerMinute <= 0 {
		exportPerMinute = 10
	}
	return &Config{
		Enabled:         true,
		CleanupInterval: 5 * time.Minute,
		Exempt:          map[string]bool{},
		Rules: []Rule{
			// Each export launches a browser
			{Path: "/export/pdf", Method: "POST", Limit: exportPerMinute, Window: time.Minute, Burst: min(exportPerMinute, 3)},
			{Path: "/render", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
			{Path: "/render/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
			{Path: "/resumes/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		},
	}
}

// LoadConfig builds DefaultConfig and applies RATE_LIMIT_ENABLED, RATE_LIMIT_EXEMPT
// (comma-separated client IPs) and RATE_LIMIT_CLEANUP_INTERVAL.
func LoadConfig(getenv func(string) string, exportPerMinute int) *Config {
	cfg := DefaultConfig(exportPerMinute)

	if v := getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := getenv("RATE_LIMIT_CLEANUP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CleanupInterval = d
		}
	}
	cfg.Exempt = parseIPList(getenv("RATE_LIMIT_EXEMPT"))
	return cfg
}

// Match returns the rule for a request, preferring exact paths over prefixes.
// It returns nil when no rule applies.
func (c *Config) Match(path, method string) *Rule {
	for i := range c.Rules {
		rule := &c.Rules[i]
		if rule.Method == method && rule.Path == path {
			return rule
		}
	}
	for i := range c.Rules {
		rule := &c.Rules[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}
	return nil
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for ip := range strings.SplitSeq(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
