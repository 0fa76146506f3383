package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/gemsw/gemver/pkg/logging"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logging.L().Error("Command execution failed", zap.Error(err))
		os.Exit(1)
	}
}
