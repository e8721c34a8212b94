package mongotxn

import "time"

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}
