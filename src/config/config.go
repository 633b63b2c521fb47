package config

import "time"

const (
	NumFloors      = 3
	NumElevators   = 2
	NumButtons     = 9
	TickInterval   = time.Millisecond
	SensorPollRate = 5 * time.Millisecond
	PollInterval   = 2 * time.Millisecond
	StatusInterval = 500 * time.Millisecond

	// Clock units (ms)
	DebounceWindow  = 50
	TravelPerFloor  = 5000
	AlertHalfPeriod = 250

	DriverAddr = "localhost:15657"
	ConfigFile = "twinlift.yaml"
	EnvFile    = ".env"
)
