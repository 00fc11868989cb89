package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/watiko/zsh-history-utils/internal/logger"
)

var version = "0.1.0"

func getDetailedVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	// A version set through ldflags wins over module information.
	if version != "0.1.0" && version != "" {
		return version
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return version
}

func main() {
	// stdout carries history data, so logs go to a file.
	if _, err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	} else {
		defer logger.Close()
	}

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
}
