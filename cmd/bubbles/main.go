// Command bubbles runs the bubble avatar effects, either in a window or as a
// headless soak test that logs frame and scene statistics.
package main

import (
	"log"
	"os"

	"github.com/Carmen-Shannon/crystal-runner/bubble"
	"github.com/Carmen-Shannon/crystal-runner/cmd/bubbles/internal/settings"
)

func main() {
	s, err := settings.Load(os.Args[1:])
	if err != nil {
		log.Printf("[Bubbles] %v", err)
		os.Exit(2)
	}

	cfg := bubble.DefaultConfig()
	if s.ConfigPath != "" {
		cfg, err = bubble.LoadConfig(s.ConfigPath)
		if err != nil {
			log.Printf("[Bubbles] %v", err)
			os.Exit(1)
		}
		log.Printf("[Bubbles] loaded effect config from %s", s.ConfigPath)
	}

	if s.Headless {
		runHeadless(s, cfg)
		return
	}
	if err := runWindow(s, cfg); err != nil {
		log.Printf("[Bubbles] %v", err)
		os.Exit(1)
	}
}
