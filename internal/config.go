package internal

import "time"

type Config struct {
	AppID             string        `env:"APP_ID,required=true"`
	Channel           string        `env:"CHANNEL,default=messages"`
	AuthToken         string        `env:"AUTH_TOKEN"`
	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	RenderWidth       int           `env:"RENDER_WIDTH,default=80"`
}
