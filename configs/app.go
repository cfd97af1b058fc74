package configs

type App struct {
	Environment     string `env:"ENVIRONMENT,notEmpty"`
	BotName         string `env:"BOT_NAME" envDefault:"work_exchange_bot"`
	PerPage         int    `env:"PER_PAGE" envDefault:"5"`
	MaxTextLength   int    `env:"MAX_TEXT_LENGTH" envDefault:"1000"`
	HealthCheckAddr string `env:"HEALTH_CHECK_ADDR" envDefault:":8080"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
