package pubsub

import "time"

// Config of the order events producer. Leave Brokers empty to run
// without events.
type Config struct {
	Brokers []string      `yaml:"brokers"`
	Timeout time.Duration `yaml:"timeout"`

	// Topics left empty are not published to.
	Topics struct {
		Placed    string `yaml:"placed"`
		Reconcile string `yaml:"reconcile"`
	} `yaml:"topics"`
}

func (c Config) Enabled() bool {
	return len(c.Brokers) > 0
}
