// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides configuration loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dacolabs/openapi2zod/internal/config"
)

// ErrInvalidConfig indicates the configuration could not be loaded or is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration of one command invocation.
type Context struct {
	// Config is the effective configuration (defaults, file, environment).
	Config *config.Config

	// Dir is the directory relative paths are resolved against.
	Dir string
}

// Load resolves the configuration for dir and returns a new context.Context
// with the session Context stored in it. configPath defaults to config.FileName;
// a relative path is taken relative to dir. When required is false a missing
// config file falls back to defaults. A .env file in dir is merged under environ.
func Load(ctx context.Context, dir, configPath string, required bool, environ []string) (context.Context, error) {
	if configPath == "" {
		configPath = config.FileName
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(dir, configPath)
	}

	vars, err := config.Environ(environ, filepath.Join(dir, ".env"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg, err := config.Resolve(configPath, required, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg, Dir: dir}), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}

// Path resolves p against the session directory.
func (c *Context) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}
