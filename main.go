package main

import (
	"flag"
	"fmt"
	"os"
	"telemetryd/internal/di"
	"telemetryd/internal/structures"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the yaml config file")
	debug := flag.Bool("debug", false, "duplicate logs to the console")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "telemetryd: %s\n", err)
		os.Exit(1)
	}
}
