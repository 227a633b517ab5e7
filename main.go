// Package main is the entry point for the gpc-ping application
package main

import (
	"github.com/jrschumacher/gpc-ping/cmd"
	"github.com/jrschumacher/gpc-ping/internal/config"
	"github.com/jrschumacher/gpc-ping/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	cmd.Execute(cfg)
}
