package main

import (
	"github.com/arcframework/arc/internal/cli"
)

func main() {
	cli.Execute()
}
