package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"csvraw/cmd/convert"
	"csvraw/cmd/lookup"
	"csvraw/cmd/root"
	"csvraw/cmd/validate"
	"csvraw/internal/fileutils"
)

func init() {
	// Load environment variables before configuration is read, so a
	// local .env can set CSVRAW_* overrides.
	loadEnvSilently()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(lookup.Cmd)
}

// loadEnvSilently loads a .env file if one exists, without logging.
func loadEnvSilently() {
	envFile := ".env"
	if !fileutils.FileExists(envFile) {
		return
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
