package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"60"`

	// Leave empty to serve the directory from the built-in seed data
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Text generation
	LLMProvider        string `envconfig:"LLM_PROVIDER"` // openai, gemini or none
	OpenAIAPIKey       string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel        string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	GeminiAPIKey       string `envconfig:"GEMINI_API_KEY"`
	GeminiModel        string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	ReminderTimeoutSec uint   `envconfig:"REMINDER_TIMEOUT_SEC" default:"30"`

	// Delivery
	MailProvider     string `envconfig:"MAIL_PROVIDER" default:"noop"` // ses or noop
	MailFromAddress  string `envconfig:"MAIL_FROM_ADDRESS" default:"reminders@bloodconnect.local"`
	MailFromName     string `envconfig:"MAIL_FROM_NAME" default:"BloodConnect"`
	CoordinatorEmail string `envconfig:"COORDINATOR_EMAIL" default:"coordinator@bloodconnect.local"`
	SMSProvider      string `envconfig:"SMS_PROVIDER" default:"noop"` // twilio or noop
	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `envconfig:"TWILIO_FROM_NUMBER"`
	SchedulingURL    string `envconfig:"SCHEDULING_URL" default:"https://bloodconnect.local/drives"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "staging"
}
