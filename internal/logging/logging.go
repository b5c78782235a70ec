// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultMaxSizeMB = 8

type Config struct {
	Level string `yaml:"level"`
	// File enables a rotating log file in addition to stderr.
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	// Quiet mutes stderr output.
	Quiet bool `yaml:"quiet"`
}

// New builds a logger writing colored output to stderr and, when a file
// is configured, plain output to a rotating file.
func New(name string, config Config) (logging.Logger, error) {
	level := logging.Info
	if config.Level != "" {
		l, err := logging.ToLevel(config.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}

	var console io.WriteCloser = os.Stderr
	if config.Quiet {
		console = discardWriteCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(level, console, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = config.Quiet
	cores := []logging.WrappedCore{consoleCore}

	if config.File != "" {
		maxSize := config.MaxSizeMB
		if maxSize <= 0 {
			maxSize = defaultMaxSizeMB
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Clean(config.File),
			MaxSize:    maxSize, // megabytes
			MaxBackups: 3,
		}
		cores = append(cores, logging.NewWrappedCore(level, rw, logging.Plain.FileEncoder()))
	}
	return logging.NewLogger(name, cores...), nil
}

type discardWriteCloser struct {
	io.Writer
}

func (discardWriteCloser) Close() error { return nil }
