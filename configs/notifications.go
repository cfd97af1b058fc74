package configs

import "time"

type Notifications struct {
	Workers        int           `env:"NOTIFICATIONS_WORKERS" envDefault:"4"`
	QueueSize      int           `env:"NOTIFICATIONS_QUEUE_SIZE" envDefault:"256"`
	ChannelDelay   time.Duration `env:"NOTIFICATIONS_CHANNEL_DELAY" envDefault:"10s"`
	RecipientDelay time.Duration `env:"NOTIFICATIONS_RECIPIENT_DELAY" envDefault:"3s"`
	DrainTimeout   time.Duration `env:"NOTIFICATIONS_DRAIN_TIMEOUT" envDefault:"30s"`
}
