package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xyproto/randomstring"

	"twinlift/lib/driver-go/elevio"
	"twinlift/src/config"
	"twinlift/src/eventlog"
	"twinlift/src/executor"
	"twinlift/src/keypad"
	"twinlift/src/notifier"
	"twinlift/src/timer"
	"twinlift/src/utils"
)

func main() {
	instance := flag.String("id", "", "Instance identifier, random if empty")
	cfgPath := flag.String("config", "", "Path to the YAML config file")
	envPath := flag.String("env", config.EnvFile, "Path to the .env file")
	useKeyboard := flag.Bool("keyboard", false, "Use the terminal instead of the panel server")
	showStatus := flag.Bool("status", false, "Print a status line")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if err := run(*instance, *cfgPath, *envPath, *useKeyboard, *showStatus, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "twinlift:", err)
		os.Exit(1)
	}
}

func run(instance, cfgPath, envPath string, useKeyboard, showStatus, debug bool) error {
	env, err := config.LoadEnv(envPath)
	if err != nil {
		return err
	}
	if cfgPath == "" {
		cfgPath = env["TWINLIFT_CONFIG"]
	}
	if cfgPath == "" {
		cfgPath = config.ConfigFile
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(env)

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logCloser, err := utils.InitLogger(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if instance == "" {
		instance = randomstring.EnglishFrequencyString(6)
	}
	slog.Info("Starting twinlift",
		"instance", instance,
		"config", cfgPath,
		"keyboard", useKeyboard,
		"travelPerFloor", cfg.TravelPerFloor,
		"debounce", cfg.DebounceWindow)

	var eventOut io.Writer = os.Stdout
	if cfg.EventLogFile != "" {
		eventFile, err := os.OpenFile(cfg.EventLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer eventFile.Close()
		eventOut = eventFile
	}

	clock := timer.New()
	sink := eventlog.New(eventOut, clock, instance)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	edges := make(chan struct{}, 1)
	var sampler executor.Sampler
	var panel notifier.Panel
	if useKeyboard {
		kp := keypad.New()
		sampler = kp
		panel = notifier.NewStatePanel(false)
		fmt.Println(keypad.Help())
		go func() {
			if err := kp.Run(ctx, edges); err != nil {
				slog.Error("Keypad stopped", "err", err)
			}
			stop()
		}()
	} else {
		if err := elevio.Init(cfg.DriverAddr); err != nil {
			return err
		}
		sampler = elevio.Panel{}
		panel = elevio.Panel{}
		go elevio.PollEdges(edges)
	}

	ctrl := executor.New(cfg, clock, sampler, panel, sink)
	go clock.Run(ctx, config.TickInterval)
	if showStatus {
		go printStatus(ctx, ctrl)
	}
	ctrl.Run(ctx, cfg.PollInterval, edges)

	utils.PrintSummary(ctrl.Snapshot())
	slog.Info("Stopped", "instance", instance)
	return nil
}

func printStatus(ctx context.Context, ctrl *executor.Controller) {
	ticker := time.NewTicker(config.StatusInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, ok := ctrl.Query(ctx)
			if !ok {
				return
			}
			utils.PrintStatus(os.Stdout, snap)
		}
	}
}
