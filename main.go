package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"patterns-example/cmd"
	"patterns-example/config"
)

func main() {
	// 解析命令行参数
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("📚 Design Pattern Catalog")
	fmt.Println("   Eight classic patterns, demonstrated one after another")
	fmt.Println()

	app, err := cmd.NewBuilder(cfg).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		os.Exit(1)
	}
}
