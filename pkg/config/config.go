package config

type DB struct {
	Url string `envconfig:"URL" required:"true"`
}

//revive:disable
type Stripe struct {
	ApiKey string `envconfig:"API_KEY" required:"true"`
	// WebhookSecret is the shared signing secret for inbound webhook
	// events. It must never be logged.
	WebhookSecret        string `envconfig:"WEBHOOK_SECRET" required:"true"`
	OnboardingReturnURL  string `envconfig:"ONBOARDING_RETURN_URL" default:"http://localhost:3000/onboarding/return"`
	OnboardingRefreshURL string `envconfig:"ONBOARDING_REFRESH_URL" default:"http://localhost:3000/onboarding/refresh"`
}

//revive:enable

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[marketplace]"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env    string  `envconfig:"APP_ENV" default:"development"`
	Server *Server `envconfig:"SERVER"`
	Log    *Log    `envconfig:"LOG"`
	DB     *DB     `envconfig:"DATABASE"`
	Stripe *Stripe `envconfig:"STRIPE"`
}
