package main

import (
	"log"

	"ColorDropper/internal/config"
	"ColorDropper/internal/state"
	"ColorDropper/internal/surface"
	"ColorDropper/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	surf := surface.New(cfg.Surface.Width, cfg.Surface.Height)
	dropper := state.NewDropper(surf, cfg.Picker.DefaultColor)

	log.Printf("Starting with image %s on a %dx%d surface", cfg.Image.Path, cfg.Surface.Width, cfg.Surface.Height)
	ui.RunApp(cfg, ui.NewEyedropper(dropper, surf, cfg.Overlay))
}
