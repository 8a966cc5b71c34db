package configs

import (
	"encoding/json"
	"io/ioutil"
)

type PacerConfig struct {
	TicksPerSecond float64
	WaitStrategy   string // "busy" or "yield"
	LogFolder      string
}

// DefaultConfig paces at the usual game-loop rate without burning a core.
func DefaultConfig() PacerConfig {
	return PacerConfig{
		TicksPerSecond: 60,
		WaitStrategy:   "yield",
	}
}

func ReadConfigFromFile(filePath string) PacerConfig {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		panic(err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		panic(err)
	}
	return config
}
