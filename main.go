package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/darko-mijic/iso-20022-camt-053-parser/cmd/batch"
	"github.com/darko-mijic/iso-20022-camt-053-parser/cmd/parse"
	"github.com/darko-mijic/iso-20022-camt-053-parser/cmd/root"
	"github.com/darko-mijic/iso-20022-camt-053-parser/cmd/validate"
)

func init() {
	// Load environment variables before any logging happens.
	loadEnvSilently()

	// Set the global log level so every logger created later inherits it.
	logrus.SetLevel(resolveLogLevel())

	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads a .env file from the working directory or its
// parent without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func resolveLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
