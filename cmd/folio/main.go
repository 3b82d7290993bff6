package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/app"
	"github.com/lixenwraith/folio/assets"
	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/page"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(2)
	}

	if cfg.Print {
		width := 80
		if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
			width = cols
		}
		if err := page.Print(os.Stdout, content.For(cfg.Lang), width); err != nil {
			fmt.Fprintf(os.Stderr, "folio: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFOLIO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("folio starting: lang=%s light=%v seed=%d config=%q", cfg.Lang, cfg.Light, seed, cfg.ConfigPath)

	a := app.New(app.Options{
		Screen:         screen,
		Audio:          sound,
		Images:         assets.NewFetcher(constants.PortraitFetchTimeout),
		Rand:           rand.New(rand.NewSource(seed)),
		Lang:           cfg.Lang,
		Light:          cfg.Light,
		PortraitSource: cfg.PortraitSource,
	})
	defer a.Close()

	events := make(chan tcell.Event, 256)
	// Input polling uses a raw goroutine as it talks to the terminal directly
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}
