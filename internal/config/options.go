package config

// Option configures Load.
type Option func(*options)

type options struct {
	environment map[string]string
	dotenv      string
}

// WithEnvironment replaces the process environment used for overrides.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) {
		o.environment = env
	}
}

// WithDotenv sets the .env file read before overrides are applied.
// An empty path disables .env loading.
func WithDotenv(path string) Option {
	return func(o *options) {
		o.dotenv = path
	}
}
