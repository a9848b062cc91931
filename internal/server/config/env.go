package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// portEnv mirrors the PORT convention of PaaS hosts: a bare port number
// that becomes ":PORT" unless ADDRESS is set explicitly.
type portEnv struct {
	Port string `env:"PORT"`
}

// parseEnv overlays values from environ onto config. Only variables that are
// present override the current value. Malformed values panic, like a broken
// JSON file.
func parseEnv(config *Config, environ map[string]string) {
	opts := env.Options{Environment: environ}

	var p portEnv
	if err := env.ParseWithOptions(&p, opts); err != nil {
		panic(err)
	}
	if p.Port != "" {
		config.EndpointAddrHTTP = ":" + strings.TrimPrefix(p.Port, ":")
	}

	if err := env.ParseWithOptions(config, opts); err != nil {
		panic(err)
	}
}

func environ() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			m[k] = v
		}
	}
	return m
}
