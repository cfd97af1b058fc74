package configs

import "time"

type Storage struct {
	Endpoint       string        `env:"S3_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey      string        `env:"S3_ACCESS_KEY,notEmpty"`
	SecretKey      string        `env:"S3_SECRET_KEY,notEmpty"`
	UseSSL         bool          `env:"S3_USE_SSL" envDefault:"false"`
	PassportBucket string        `env:"S3_PASSPORT_BUCKET" envDefault:"passports"`
	MediaBucket    string        `env:"S3_MEDIA_BUCKET" envDefault:"media"`
	PresignTTL     time.Duration `env:"S3_PRESIGN_TTL" envDefault:"1h"`
}
