package api

import "time"

// Config of the orders HTTP surface.
type Config struct {
	// Proxy is consulted for client addresses only when Trusted is set.
	Proxy struct {
		Header  string   `yaml:"header"`
		Trusted []string `yaml:"trusted"`
	} `yaml:"proxy"`

	// WriteTimeout must exceed the coordinator timeout plus retries,
	// or slow placements are cut off before their result is sent.
	HTTP struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"readTimeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout"`
		IdleTimeout  time.Duration `yaml:"idleTimeout"`
	} `yaml:"http"`

	// ShutdownTimeout bounds draining of in-flight placements.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}
