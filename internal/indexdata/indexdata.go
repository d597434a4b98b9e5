// Package indexdata builds the process-wide overnight index registry from
// the bundled definitions and any user supplied files.
package indexdata

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/meenmo/rateindex/calendar"
	"github.com/meenmo/rateindex/index"
)

//go:embed overnight.yaml
var standardDefinitions []byte

// Options selects optional files layered over the bundled data.
type Options struct {
	// Holidays is a YAML holiday file whose holidays are added to the bundled
	// calendars of the same ID.
	Holidays string
	// Definitions is a YAML file of extra overnight index definitions.
	Definitions string
	Logger      *slog.Logger
}

// Calendars returns the bundled calendars merged with opts.Holidays.
func Calendars(opts Options) (*calendar.Set, error) {
	cals := calendar.Builtin()
	if opts.Holidays == "" {
		return cals, nil
	}
	extra, err := calendar.ReadFile(opts.Holidays)
	if err != nil {
		return nil, fmt.Errorf("holidays %s: %w", opts.Holidays, err)
	}
	return cals.Merge(extra), nil
}

// Load builds the registry of standard indices plus opts.Definitions over
// the calendars returned by Calendars.
func Load(opts Options) (*index.Registry, error) {
	cals, err := Calendars(opts)
	if err != nil {
		return nil, err
	}
	return Registry(cals, opts)
}

// Registry builds the registry of standard indices plus opts.Definitions,
// resolving calendar names in cals. opts.Holidays is ignored.
func Registry(cals *calendar.Set, opts Options) (*index.Registry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	resolve := func(name string) (index.HolidayCalendar, error) {
		c, err := cals.Lookup(name)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	indices, err := index.DecodeDefinitions(bytes.NewReader(standardDefinitions), resolve)
	if err != nil {
		return nil, fmt.Errorf("standard definitions: %w", err)
	}
	if opts.Definitions != "" {
		f, err := os.Open(opts.Definitions)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		extra, err := index.DecodeDefinitions(f, resolve)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.Definitions, err)
		}
		logger.Debug("loaded index definitions", "path", opts.Definitions, "count", len(extra))
		indices = append(indices, extra...)
	}

	reg, err := index.NewRegistry(indices, index.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("index registry ready", "indices", reg.Len(), "calendars", len(cals.IDs()))
	return reg, nil
}
