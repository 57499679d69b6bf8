package cmd

// Config carries all runtime configuration, loaded from the environment by
// the application entrypoint.
type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	AmqpURL      string
	AmqpExchange string
	JWTSecret    string
	FeePerKgRate string
	FeeCurrency  string
}
