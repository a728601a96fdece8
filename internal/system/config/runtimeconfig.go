package config

import "sync"

// Runtime holds the runtime configuration for the server.
type Runtime struct {
	Home   string `yaml:"home"`
	Config Config `yaml:"config"`
}

var (
	runtimeConfig *Runtime
	once          sync.Once
)

// InitializeRuntime initializes the Runtime configuration.
func InitializeRuntime(home string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &Runtime{
			Home:   home,
			Config: *config,
		}
	})

	return nil
}

// GetRuntime returns the Runtime configuration.
func GetRuntime() *Runtime {

	if runtimeConfig == nil {
		panic("runtime configuration is not initialized")
	}
	return runtimeConfig
}

// OverrideRuntime replaces the runtime configuration. Test use only.
func OverrideRuntime(conf Config) {
	runtimeConfig = &Runtime{
		Config: conf,
	}
}
