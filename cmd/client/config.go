package main

import "time"

type Config struct {
	ServerURL      string        `env:"HERO_SERVER_URL,default=http://localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE,default=300ms"`
}
