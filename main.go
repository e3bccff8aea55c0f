package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"LightSpeedDuelClient/internal/client"
)

func main() {
	configPath := flag.String("config", "configs/client.yaml", "path to client YAML config")
	envFile := flag.String("env-file", ".env", "path to env file with LSD_* variables")
	origin := flag.String("origin", "", "server origin, e.g. https://host:8080")
	room := flag.String("room", "", "room to join")
	name := flag.String("name", "", "pilot name")
	mode := flag.String("mode", "", "game mode, e.g. campaign")
	mission := flag.String("mission", "", "mission id for campaign mode")
	mapW := flag.Int("mapW", -1, "override world width")
	mapH := flag.Int("mapH", -1, "override world height")
	statusAddr := flag.String("status-addr", "", "serve local state inspection on this address (e.g., 127.0.0.1:9090)")
	printSchema := flag.Bool("config-schema", false, "print the config file JSON schema and exit")
	flag.Parse()

	if *printSchema {
		data, err := client.ConfigSchema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to build schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	cfg := client.DefaultAppConfig()
	cfg.ConfigPath = *configPath
	cfg.EnvFile = *envFile

	var overrides client.ConfigOverrides

	if *origin != "" {
		val := *origin
		overrides.Origin = &val
	}
	if *room != "" {
		val := *room
		overrides.Room = &val
	}
	if *name != "" {
		val := *name
		overrides.Name = &val
	}
	if *mode != "" {
		val := *mode
		overrides.Mode = &val
	}
	if *mission != "" {
		val := *mission
		overrides.Mission = &val
	}
	if *mapW >= 0 {
		val := *mapW
		overrides.MapW = &val
	}
	if *mapH >= 0 {
		val := *mapH
		overrides.MapH = &val
	}
	if *statusAddr != "" {
		val := *statusAddr
		overrides.StatusAddr = &val
	}

	cfg.Overrides = overrides

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := client.StartApp(ctx, cfg); err != nil {
		log.Fatalf("client: %v", err)
	}
}
