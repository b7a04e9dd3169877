package main

import (
	"oligoseq/internal/app"
	"oligoseq/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
