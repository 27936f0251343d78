package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/stpnv0/SlotMatcher/internal/calendarfeed"
	"github.com/stpnv0/SlotMatcher/internal/capacity"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/lifecycle"
	"github.com/stpnv0/SlotMatcher/internal/matching"
	"github.com/stpnv0/SlotMatcher/internal/navigation"
	"github.com/stpnv0/SlotMatcher/internal/registry"
	"github.com/stpnv0/SlotMatcher/internal/scheduler"
	"github.com/stpnv0/SlotMatcher/internal/seed"
	"github.com/stpnv0/SlotMatcher/internal/service"
	"github.com/urfave/cli/v2"
	"github.com/wb-go/wbf/logger"
)

const defaultTimeout = 10 * time.Second

func userFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "user",
		Aliases:  []string{"u"},
		Usage:    "user id",
		Required: true,
	}
}

func newLogger(level string) (logger.Logger, error) {
	log, err := logger.InitLogger(
		logger.Engine("slog"),
		"slotctl",
		"release",
		logger.WithLevel(levelOf(level)),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func newSlotService(c *cli.Context) (*service.SlotService, logger.Logger, error) {
	log, err := newLogger(c.String("log-level"))
	if err != nil {
		return nil, nil, err
	}

	client, err := matching.New(
		matching.Endpoints{BaseURL: c.String("base-url")},
		matching.WithTimeout(c.Duration("timeout")),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("init matching client: %w", err)
	}

	store, err := seed.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load seed dataset: %w", err)
	}

	return service.NewSlotService(client, store, log), log, nil
}

func levelOf(s string) logger.Level {
	switch s {
	case "debug":
		return logger.DebugLevel
	case "info":
		return logger.InfoLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.WarnLevel
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func activitiesCommand() *cli.Command {
	return &cli.Command{
		Name:  "activities",
		Usage: "List the activity catalog.",
		Action: func(c *cli.Context) error {
			svc, _, err := newSlotService(c)
			if err != nil {
				return err
			}
			return printJSON(c.App.Writer, svc.FetchActivityCatalog(c.Context))
		},
	}
}

func slotsCommand() *cli.Command {
	return &cli.Command{
		Name:  "slots",
		Usage: "List a user's slots.",
		Flags: []cli.Flag{userFlag()},
		Action: func(c *cli.Context) error {
			svc, _, err := newSlotService(c)
			if err != nil {
				return err
			}
			reg := registry.New(svc)
			reg.Load(c.Context, c.String("user"))
			return printJSON(c.App.Writer, reg.Slots())
		},
	}
}

func slotCommand() *cli.Command {
	return &cli.Command{
		Name:  "slot",
		Usage: "Show one slot with its capacity view.",
		Flags: []cli.Flag{
			userFlag(),
			&cli.StringFlag{Name: "id", Usage: "slot id", Required: true},
		},
		Action: func(c *cli.Context) error {
			svc, _, err := newSlotService(c)
			if err != nil {
				return err
			}
			slot, err := svc.FetchSlotDetail(c.Context, c.String("user"), c.String("id"))
			if err != nil {
				return err
			}
			return printJSON(c.App.Writer, struct {
				Slot     *domain.Slot  `json:"slot"`
				Capacity capacity.View `json:"capacity"`
			}{slot, capacity.Snapshot(*slot)})
		},
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Register a group for an activity slot.",
		Flags: []cli.Flag{
			userFlag(),
			&cli.StringFlag{Name: "activity", Usage: "activity id", Required: true},
			&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD", Required: true},
			&cli.StringFlag{Name: "time", Usage: "morning, afternoon or evening", Value: string(domain.Evening)},
			&cli.StringFlag{Name: "intensity", Usage: "casual or serious", Value: string(domain.IntensityCasual)},
			&cli.IntFlag{Name: "size", Usage: "group size", Value: 1},
		},
		Action: func(c *cli.Context) error {
			svc, _, err := newSlotService(c)
			if err != nil {
				return err
			}
			reg, err := svc.RegisterSlot(c.Context, c.String("user"), domain.RegisterSlotInput{
				ActivityID:     c.String("activity"),
				Date:           c.String("date"),
				TimeOfDay:      domain.TimeOfDay(c.String("time")),
				Intensity:      domain.Intensity(c.String("intensity")),
				OwnerGroupSize: c.Int("size"),
			})
			if err != nil {
				return err
			}
			return printJSON(c.App.Writer, reg)
		},
	}
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "Resolve where a calendar date leads.",
		Flags: []cli.Flag{
			userFlag(),
			&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD", Required: true},
		},
		Action: func(c *cli.Context) error {
			date := c.String("date")
			if _, err := time.Parse(domain.DateLayout, date); err != nil {
				return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
			}

			svc, _, err := newSlotService(c)
			if err != nil {
				return err
			}
			reg := registry.New(svc)
			reg.Load(c.Context, c.String("user"))

			route := navigation.Resolve(date, reg.Lookup(date))
			_, err = fmt.Fprintln(c.App.Writer, route.Path())
			return err
		},
	}
}

func icsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ics",
		Usage: "Export a user's slots as an iCalendar feed.",
		Flags: []cli.Flag{
			userFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, stdout when empty"},
		},
		Action: func(c *cli.Context) error {
			svc, _, err := newSlotService(c)
			if err != nil {
				return err
			}
			userID := c.String("user")

			w := c.App.Writer
			if path := c.String("out"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create %s: %w", path, err)
				}
				defer f.Close()
				w = f
			}

			return calendarfeed.NewEncoder().Encode(w, userID, svc.FetchSlotList(c.Context, userID))
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Poll a slot and print each lifecycle change until it is matched.",
		Flags: []cli.Flag{
			userFlag(),
			&cli.StringFlag{Name: "id", Usage: "slot id", Required: true},
			&cli.DurationFlag{Name: "interval", Value: scheduler.DefaultRefreshInterval},
			&cli.DurationFlag{Name: "dwell", Value: lifecycle.DefaultFoundDwell},
		},
		Action: func(c *cli.Context) error {
			svc, log, err := newSlotService(c)
			if err != nil {
				return err
			}

			watches := service.NewWatchService(svc, c.Duration("dwell"), c.Duration("interval"), log)
			defer watches.Close()

			id, err := watches.Start(c.Context, c.String("user"), c.String("id"))
			if err != nil {
				return err
			}

			return followWatch(c.Context, c.App.Writer, watches, id)
		},
	}
}

func followWatch(ctx context.Context, w io.Writer, watches *service.WatchService, id string) error {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var last lifecycle.Phase
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		snap, err := watches.Get(id)
		if err != nil {
			return err
		}
		if snap.Phase != last {
			last = snap.Phase
			fmt.Fprintf(w, "%s  %s  %d/%d (%.0f%%)\n",
				time.Now().Format(time.TimeOnly), snap.Phase,
				snap.Capacity.TotalParticipants, snap.Slot.MinCapacity, snap.Capacity.Progress)
		}
		if snap.Phase == lifecycle.PhaseMatched || !snap.Polling {
			return nil
		}
	}
}
