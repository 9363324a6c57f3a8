// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the harness configuration.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// Directory holding textures/ and meshes/.
	Assets string `yaml:"assets"`
}

func defaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Title:  "tabletop",
		Assets: "assets",
	}
}

// loadConfig reads a YAML config file. Fields left unset
// keep their defaults. An empty path means defaults only.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
