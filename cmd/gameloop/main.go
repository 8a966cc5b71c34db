package main

import (
	"flag"

	"github.com/nm-morais/go-pacer/configs"
	"github.com/nm-morais/go-pacer/pkg/logs"
	"github.com/nm-morais/go-pacer/pkg/pacer"
	"github.com/nm-morais/go-pacer/pkg/timer"
)

func main() {

	var confFile string
	var ticks int
	flag.StringVar(&confFile, "conf", "", "path to a pacer JSON config")
	flag.IntVar(&ticks, "n", 300, "number of ticks to run")
	flag.Parse()

	config := configs.DefaultConfig()
	if confFile != "" {
		config = configs.ReadConfigFromFile(confFile)
	}

	logger := logs.NewLogger("gameloop")
	if config.LogFolder != "" {
		logs.SetupLogFile(logger, config.LogFolder, "gameloop")
	}

	p, err := pacer.NewPacer(config, timer.NewCounterTimer())
	if err != nil {
		err.Log()
		panic(err.ToString())
	}

	var total, worst float64
	p.Start()
	for i := 0; i < ticks; i++ {
		frame := p.Pace()
		total += frame
		if frame > worst {
			worst = frame
		}
	}
	logger.Infof(
		"%d ticks at %v/s: avg frame %.3f ms, worst %.3f ms",
		ticks,
		1/p.Interval(),
		total/float64(ticks),
		worst,
	)
}
