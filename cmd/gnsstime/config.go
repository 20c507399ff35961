// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file, flags override any settings in the file'"`
	Format string `subcmd:"format,,'output format: text, json or yaml, text is used if not set here or in the configuration file'"`
}

type epochsFlags struct {
	CommonFlags
	Interval string `subcmd:"interval,,'interval between epochs, eg. 1s or 30s, 30s is used if not set here or in the configuration file'"`
}

// Config represents the optional yaml configuration file.
type Config struct {
	Logging  cmdutil.LoggingConfig `yaml:"logging"`
	Format   string                `yaml:"format"`
	Interval string                `yaml:"interval"`
}

const (
	defaultFormat   = "text"
	defaultInterval = 30 * time.Second
)

var defaultLogging = (&cmdutil.LoggingFlags{Format: "json"}).LoggingConfig()

func loadConfig(ctx context.Context, cf *CommonFlags) (Config, error) {
	var cfg Config
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// loggingConfig returns the logging configuration to use: each flag left
// at its default value is replaced by the corresponding configuration
// file setting, if any.
func (cf *CommonFlags) loggingConfig(cfg Config) cmdutil.LoggingConfig {
	lc := cf.LoggingConfig()
	if lc.Level == defaultLogging.Level && cfg.Logging.Level != 0 {
		lc.Level = cfg.Logging.Level
	}
	if lc.File == defaultLogging.File && len(cfg.Logging.File) > 0 {
		lc.File = cfg.Logging.File
	}
	if (len(lc.Format) == 0 || lc.Format == defaultLogging.Format) && len(cfg.Logging.Format) > 0 {
		lc.Format = cfg.Logging.Format
	}
	if !lc.SourceCode {
		lc.SourceCode = cfg.Logging.SourceCode
	}
	return lc
}

func (cf *CommonFlags) format(cfg Config) (string, error) {
	f := cf.Format
	if len(f) == 0 {
		f = cfg.Format
	}
	if len(f) == 0 {
		f = defaultFormat
	}
	switch f {
	case "text", "json", "yaml":
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q: use text, json or yaml", f)
}

func (ef *epochsFlags) interval(cfg Config) (time.Duration, error) {
	s := ef.Interval
	if len(s) == 0 {
		s = cfg.Interval
	}
	if len(s) == 0 {
		return defaultInterval, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid interval %q: must be positive", s)
	}
	return d, nil
}

// setup reads the configuration file, if any, and returns a context
// carrying the configured logger together with the output format.
// The returned logger must be closed by the caller.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, *cmdutil.Logger, Config, string, error) {
	cfg, err := loadConfig(ctx, cf)
	if err != nil {
		return ctx, nil, Config{}, "", err
	}
	format, err := cf.format(cfg)
	if err != nil {
		return ctx, nil, Config{}, "", err
	}
	logger, err := cf.loggingConfig(cfg).NewLogger()
	if err != nil {
		return ctx, nil, Config{}, "", err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	if len(cf.Config) > 0 {
		ctxlog.Logger(ctx).Debug("configuration", "file", cf.Config, "format", format)
	}
	return ctx, logger, cfg, format, nil
}
