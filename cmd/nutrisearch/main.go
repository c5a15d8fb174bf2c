/*
Package main implements the nutrisearch interactive nutrition lookup.

nutrisearch loads a nutrition table (one row per food, one column per
nutrient) and lets you search it by name. Matching is a case-insensitive
substring test; a single exact hit is shown right away, anything else is
listed as a numbered menu of at most 15 entries where 0 cancels.

The profile of a food prints the major nutrients first:

	Caloric Value: 155.00 kcal
	Protein: 13.00 g
	Fat: 10.60 g
	Carbohydrates: 1.10 g
	Sugars: 1.10 g

followed by the ten largest remaining nutrient values.

# Usage

Start an interactive session with the bundled dataset:

	nutrisearch

Type a food name at the prompt, and q, exit or quit to leave. Ctrl+C and
end of input leave as well.

Use another dataset directory and enable debug logging:

	nutrisearch -data /srv/nutrition -d

Serve msgpack requests on stdin/stdout instead of prompting:

	nutrisearch -s

# Dataset

The dataset is dataset/combined_food_data.csv, looked up next to the
executable first and then under the working directory. It needs a header
row with a food column; every other column is a nutrient. The program
exits before prompting when the file is missing or malformed.

# Configuration

An optional TOML file in the user config dir (or -config) can change the
dataset location and the search limits:

	[dataset]
	dir = "dataset"
	file = "combined_food_data.csv"
	delimiter = ","

	[search]
	menu_limit = 15
	top_others = 10

The file is read, never written.

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-data string
	    Directory containing the dataset file
	-config string
	    Path to a TOML config file
	-s  Serve msgpack requests instead of the interactive prompt
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/deitnotify/nutrisearch/internal/cli"
	"github.com/deitnotify/nutrisearch/internal/utils"
	"github.com/deitnotify/nutrisearch/pkg/config"
	"github.com/deitnotify/nutrisearch/pkg/dataset"
	"github.com/deitnotify/nutrisearch/pkg/lookup"
	"github.com/deitnotify/nutrisearch/pkg/server"
)

const (
	Version = "1.0.0"
	AppName = "nutrisearch"
)

// sigHandler says goodbye and exits normally on interrupt.
func sigHandler(out io.Writer) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintln(out, "\nGoodbye!")
		os.Exit(0)
	}()
}

// main wires config, dataset and engine, then hands over to the
// interactive session or the IPC server.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	dataDir := flag.String("data", "", "Directory containing the dataset file (default: dataset/)")
	configPath := flag.String("config", "", "Path to a TOML config file")
	serverMode := flag.Bool("s", false, "Serve msgpack requests on stdin/stdout instead of prompting")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// stdout carries msgpack in server mode
	if *serverMode {
		sigHandler(os.Stderr)
	} else {
		sigHandler(os.Stdout)
	}

	pathResolver, err := utils.NewPathResolver(AppName)
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	cfg, cfgPath := config.LoadConfigWithPriority(*configPath, pathResolver.GetConfigPath(config.FileName))
	if cfgPath != "" {
		log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(cfgPath))
	}

	dir := cfg.Dataset.Dir
	if *dataDir != "" {
		dir = *dataDir
	}
	datasetPath := pathResolver.GetDatasetPath(dir, cfg.Dataset.File)
	log.Debugf("Using dataset at: %s", datasetPath)

	if !*serverMode {
		fmt.Println("Loading Nutrition Database...")
	}
	table, err := dataset.Load(datasetPath, dataset.Options{Delimiter: cfg.DelimiterRune()})
	if err != nil {
		log.Error("Could not load the nutrition database", "err", err)
		log.Fatal("System cannot function without data. Exiting.")
	}

	engine := lookup.NewEngine(table, lookup.Options{
		MenuLimit: cfg.Search.MenuLimit,
		TopOthers: cfg.Search.TopOthers,
		Units:     lookup.DefaultUnits(),
	})

	if *serverMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(engine, os.Stdin, os.Stdout)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	inputHandler := cli.NewInputHandler(engine, os.Stdin, os.Stdout, cfg.CLI.ShowBanner)
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// printVersion shows the version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ nutrisearch ] Nutrition facts for any food in the table")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
