package main

import (
	"oligoseq/internal/appshell"
	"oligoseq/internal/checkapp"
)

func main() { appshell.Main(checkapp.RunContext) }
