// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treeunit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Outputs a Config's Output may be set to.
const (
	Stdout  = "stdout"
	Stderr  = "stderr"
	Discard = "discard"
)

// Config describes a [Runner] in YAML, e.g.:
//
//	enabled: true
//	output: stderr
//	log_level: debug
//
// An empty LogLevel turns logging off.
type Config struct {
	Enabled  bool   `yaml:"enabled"`
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig is enabled, reports to stdout and doesn't log.
func DefaultConfig() Config {
	return Config{Enabled: true, Output: Stdout}
}

// ParseConfig parses given YAML data on top of the [DefaultConfig].
// Unknown keys, unknown outputs and unknown log levels are errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("treeunit: config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config at given path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("treeunit: config: read: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.writer(); err != nil {
		return err
	}
	_, err := c.level()
	return err
}

func (c Config) writer() (io.Writer, error) {
	switch c.Output {
	case Stdout, "":
		return os.Stdout, nil
	case Stderr:
		return os.Stderr, nil
	case Discard:
		return io.Discard, nil
	}
	return nil, fmt.Errorf("treeunit: config: unknown output %q", c.Output)
}

func (c Config) level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return l, fmt.Errorf("treeunit: config: %w", err)
	}
	return l, nil
}

// Runner returns a runner with a flag of its own set as configured.
func (c Config) Runner() (*Runner, error) {
	w, err := c.writer()
	if err != nil {
		return nil, err
	}
	r := &Runner{Flag: &Flag{}, Out: w}
	if !c.Enabled {
		r.Flag.Disable()
	}
	if c.LogLevel == "" {
		return r, nil
	}
	l, err := c.level()
	if err != nil {
		return nil, err
	}
	r.Logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		l,
	))
	return r, nil
}
