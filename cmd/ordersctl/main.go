package main

import (
	"os"

	"smartorders/cmd/ordersctl/commands"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
