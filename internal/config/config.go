package config

// Config holds the runtime configuration for a single render.
type Config struct {
	// Input
	TemplateFile string
	Flavour      string

	// Pick the flavour interactively instead of from the arguments.
	PickFlavour bool
}

// Default returns a Config with defaults applied. There is no default
// flavour; one must be named or picked.
func Default() Config {
	return Config{}
}
