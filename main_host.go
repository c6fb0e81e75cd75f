//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fiftyeight/app"
	"fiftyeight/face/widgets"
	"fiftyeight/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	s := app.DefaultSettings()
	var left, right string

	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&s.DarkMode, "dark", s.DarkMode, "Light text on a dark background.")
	flag.BoolVar(&s.TwentyFourHour, "24h", s.TwentyFourHour, "24-hour time format.")
	flag.BoolVar(&s.TwoLetterDay, "two-letter-day", s.TwoLetterDay, "Two-letter day names.")
	flag.BoolVar(&s.ShowSecondDot, "second-dot", s.ShowSecondDot, "Show the second dot.")
	flag.BoolVar(&s.ShowHourMinuteDots, "hm-dots", s.ShowHourMinuteDots, "Show the hour and minute dots.")
	flag.IntVar(&s.StepGoal, "step-goal", s.StepGoal, "Daily step goal for the steps widget.")
	flag.StringVar(&left, "left", s.TopLeft.String(), "Top-left widget (none, month, day, dayname, ampm, battery, steps).")
	flag.StringVar(&right, "right", s.TopRight.String(), "Top-right widget.")
	flag.Parse()

	var err error
	if s.TopLeft, err = widgets.ParseType(left); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if s.TopRight, err = widgets.ParseType(right); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	newFace := func(h hal.HAL) func() error {
		return app.NewWithSettings(h, s)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newFace, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newFace); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
