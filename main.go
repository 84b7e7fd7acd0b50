package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/sheharyar/portfolio/internal/cli"
)

func main() {
	cli.Execute()
}
