package main

import (
	"fmt"
	"os"

	"saturn-scene/internal/commands"
	"saturn-scene/internal/logger"
)

func main() {
	log := logger.New(logger.LogFilePath)

	reg := commands.NewRegistry("run")
	registerCommands(reg, log, os.Stdout)
	err := reg.Execute(os.Args[1:])
	if err != nil {
		log.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "saturn:", err)
		reg.Usage(os.Stderr)
	}
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}
