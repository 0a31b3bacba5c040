package config

import (
	"fmt"
	"net/url"
	"slices"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// builtinBases are collection names custom types may not take over.
var builtinBases = []string{
	"posts", "pages", "media", "categories", "tags", "taxonomies", "comments", "menus", "users",
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Server.APIKey == "" {
		errs = append(errs, "server.api_key: required")
	}

	if c.Site.URL == "" {
		errs = append(errs, "site.url: required")
	} else if u, err := url.Parse(c.Site.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("site.url: must be an absolute http(s) URL, got %q", c.Site.URL))
	}
	if (c.Site.Username == "") != (c.Site.AppPassword == "") {
		errs = append(errs, "site.username, site.app_password: both or neither must be set")
	}
	if c.Site.Timeout.Duration < 0 {
		errs = append(errs, "site.timeout: must not be negative")
	}
	if c.Site.RefreshInterval.Duration < 0 {
		errs = append(errs, "site.refresh_interval: must not be negative")
	}

	seen := make(map[string]bool)
	for i, ct := range c.Site.CustomTypes {
		switch {
		case ct.RESTBase == "":
			errs = append(errs, fmt.Sprintf("site.custom_types[%d].rest_base: required", i))
		case slices.Contains(builtinBases, ct.RESTBase):
			errs = append(errs, fmt.Sprintf("site.custom_types[%d].rest_base: %q is a builtin type", i, ct.RESTBase))
		case seen[ct.RESTBase]:
			errs = append(errs, fmt.Sprintf("site.custom_types[%d].rest_base: %q declared twice", i, ct.RESTBase))
		}
		seen[ct.RESTBase] = true
	}

	return errs
}
