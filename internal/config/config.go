package config

type Config interface {
	EnvConfig
	CookieConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
	Cookies
}

func New() Config {
	return mainConfig{}
}
