package main

import (
	"github.com/joho/godotenv"

	"github.com/driftchat/drift/cmd"
)

func main() {
	// .env carries DRIFT_THEME; running without one is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
