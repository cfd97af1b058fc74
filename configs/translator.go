package configs

import "time"

type Translator struct {
	URL     string        `env:"TRANSLATOR_URL" envDefault:"https://translate.googleapis.com"`
	Timeout time.Duration `env:"TRANSLATOR_TIMEOUT" envDefault:"10s"`
}
