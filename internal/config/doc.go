// Package config provides configuration loading for the tiny renderer and
// CLI.
//
// Configuration is layered: built-in defaults, then an optional tiny.yaml
// (or any file passed with --config), then TINY_* environment variables.
//
// # Configuration File Structure
//
//	id_attribute: data-reactid
//	root_index: 0
//	log_level: info
//	metrics:
//	  enabled: false
//	  namespace: tiny
//	tracing:
//	  enabled: false
//	  tracer_name: tiny
//	watch:
//	  debounce: 100ms
//
// Nested keys map to environment variables with dots replaced by
// underscores, e.g. TINY_WATCH_DEBOUNCE=250ms.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := cfg.Logger(os.Stderr)
package config
