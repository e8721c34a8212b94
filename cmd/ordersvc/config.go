package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/multitx/internal/api"
	"github.com/nikmy/multitx/internal/pubsub"
	"github.com/nikmy/multitx/pkg/coordinator"
	"github.com/nikmy/multitx/pkg/environment"
	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/txn/mongotxn"
)

type Config struct {
	Environment environment.Env    `yaml:"Environment"`
	Coordinator coordinator.Config `yaml:"Coordinator"`
	API         api.Config         `yaml:"API"`
	Events      pubsub.Config      `yaml:"Events"`

	Connections struct {
		Orders    mongotxn.Config `yaml:"orders"`
		Inventory mongotxn.Config `yaml:"inventory"`
	} `yaml:"Connections"`

	Collections struct {
		Orders    string `yaml:"orders"`
		Inventory string `yaml:"inventory"`
	} `yaml:"Collections"`
}

func loadConfig() (*Config, error) {
	path := flag.String("config", "config.yaml", "path to config file")
	env := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()

	abs, err := filepath.Abs(*path)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", abs)
	}

	cfg := Config{Coordinator: coordinator.DefaultConfig()}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if *env != "" {
		cfg.Environment = environment.FromString(*env)
	}

	if cfg.Collections.Orders == "" {
		cfg.Collections.Orders = "orders"
	}
	if cfg.Collections.Inventory == "" {
		cfg.Collections.Inventory = "inventory"
	}

	return &cfg, errors.WrapFail(cfg.Coordinator.Validate(), "validate coordinator config")
}
