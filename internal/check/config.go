package check

// DefaultDiscardOperation is the function whose single argument is a discarded value.
const DefaultDiscardOperation = "ignore"

// Config holds the process-wide toggles. It is built once by the driver and
// passed by value; the checker never mutates it.
type Config struct {
	// AnnotatedIgnores requires a type annotation on discarded values.
	AnnotatedIgnores bool
	// CheckComments enables the comment policy and documentation syntax checks.
	CheckComments bool
	// DiscardOperation names the discard function; empty means "ignore".
	DiscardOperation string
}

// DefaultConfig has both checks off and the discard function "ignore".
func DefaultConfig() Config {
	return Config{DiscardOperation: DefaultDiscardOperation}
}

func (c Config) discard() string {
	if c.DiscardOperation == "" {
		return DefaultDiscardOperation
	}
	return c.DiscardOperation
}
