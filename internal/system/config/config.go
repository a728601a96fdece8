package config

// AddrConfig holds the server listen address.
type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

// AuthConfig controls how ID tokens are verified.
//
// Mode "firebase" delegates verification to the Firebase Admin SDK.
// Mode "local" parses tokens without signature verification and is meant
// for development against the Auth emulator only.
type AuthConfig struct {
	Mode               string   `yaml:"mode"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// FirebaseConfig holds the Firebase Admin SDK settings.
type FirebaseConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

// RedisConfig holds the cart store connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Config is the root of the deployment configuration.
type Config struct {
	Addr     AddrConfig     `yaml:"addr"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Firebase FirebaseConfig `yaml:"firebase"`
	Redis    RedisConfig    `yaml:"redis"`
}
