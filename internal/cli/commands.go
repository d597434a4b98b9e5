package cli

import (
	"fmt"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/meenmo/rateindex/index"
	"github.com/meenmo/rateindex/utils"
)

// indexJSON is the JSON form of an overnight index.
type indexJSON struct {
	Name                  string `json:"name"`
	Type                  string `json:"type"`
	Currency              string `json:"currency"`
	Calendar              string `json:"calendar"`
	Tenor                 string `json:"tenor"`
	PublicationDateOffset int    `json:"publication_date_offset"`
	EffectiveDateOffset   int    `json:"effective_date_offset"`
	DayCount              string `json:"day_count"`
}

type datesJSON struct {
	Index       string `json:"index"`
	Input       string `json:"input"`
	Fixing      string `json:"fixing_date"`
	Publication string `json:"publication_date,omitempty"`
	Effective   string `json:"effective_date"`
	Maturity    string `json:"maturity_date"`
}

func toJSON(idx *index.OvernightIndex) indexJSON {
	return indexJSON{
		Name:                  idx.Name(),
		Type:                  string(idx.Type()),
		Currency:              idx.Currency().String(),
		Calendar:              idx.Calendar().Name(),
		Tenor:                 idx.Tenor().String(),
		PublicationDateOffset: idx.PublicationDateOffset(),
		EffectiveDateOffset:   idx.EffectiveDateOffset(),
		DayCount:              idx.DayCount().String(),
	}
}

func (j indexJSON) row() []string {
	return []string{
		j.Name, j.Currency, j.Calendar,
		strconv.Itoa(j.PublicationDateOffset), strconv.Itoa(j.EffectiveDateOffset), j.DayCount,
	}
}

var indexHeader = []string{"NAME", "CURRENCY", "CALENDAR", "PUBLICATION", "EFFECTIVE", "DAY COUNT"}

func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered overnight indices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]indexJSON, 0, opts.registry.Len())
			rows := make([][]string, 0, opts.registry.Len())
			for _, name := range opts.registry.Names() {
				idx, err := opts.registry.Lookup(name)
				if err != nil {
					return err
				}
				j := toJSON(idx)
				out = append(out, j)
				rows = append(rows, j.row())
			}
			return formatter(opts, cmd).Rows(out, indexHeader, rows)
		},
	}
}

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show the definition of an overnight index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := index.Of(opts.registry, args[0])
			if err != nil {
				return err
			}
			j := toJSON(idx)
			rows := [][]string{
				{"name", j.Name},
				{"type", j.Type},
				{"currency", j.Currency},
				{"calendar", j.Calendar},
				{"tenor", j.Tenor},
				{"publication offset", strconv.Itoa(j.PublicationDateOffset)},
				{"effective offset", strconv.Itoa(j.EffectiveDateOffset)},
				{"day count", j.DayCount},
			}
			return formatter(opts, cmd).Rows(j, nil, rows)
		},
	}
}

// NewDatesCommand creates the dates command.
func NewDatesCommand(opts *RootOptions) *cobra.Command {
	var fixing string
	cmd := &cobra.Command{
		Use:   "dates <index>",
		Short: "Derive publication, effective and maturity dates from a fixing date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := index.Of(opts.registry, args[0])
			if err != nil {
				return err
			}
			in, err := utils.ParseDate(fixing)
			if err != nil {
				return err
			}
			dates, err := idx.Dates(in)
			if err != nil {
				return err
			}
			if !dates.Fixing.Equal(in) {
				ctxlog.Logger(cmd.Context()).Info("fixing date moved to business day",
					"index", idx.Name(), "input", fixing, "fixing", utils.FormatDate(dates.Fixing))
			}
			out := datesJSON{
				Index:       idx.Name(),
				Input:       utils.FormatDate(in),
				Fixing:      utils.FormatDate(dates.Fixing),
				Publication: utils.FormatDate(dates.Publication),
				Effective:   utils.FormatDate(dates.Effective),
				Maturity:    utils.FormatDate(dates.Maturity),
			}
			return formatter(opts, cmd).Rows(out, nil, [][]string{
				{"fixing", out.Fixing},
				{"publication", out.Publication},
				{"effective", out.Effective},
				{"maturity", out.Maturity},
			})
		},
	}
	cmd.Flags().StringVar(&fixing, "fixing", "", "fixing date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("fixing")
	return cmd
}

// NewFixingCommand creates the fixing command.
func NewFixingCommand(opts *RootOptions) *cobra.Command {
	var effective string
	cmd := &cobra.Command{
		Use:   "fixing <index>",
		Short: "Derive the fixing and maturity dates from an effective date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := index.Of(opts.registry, args[0])
			if err != nil {
				return err
			}
			in, err := utils.ParseDate(effective)
			if err != nil {
				return err
			}
			fix, err := idx.FixingFromEffective(in)
			if err != nil {
				return fmt.Errorf("fixing date: %w", err)
			}
			eff, err := idx.EffectiveFromFixing(fix)
			if err != nil {
				return err
			}
			mat, err := idx.MaturityFromEffective(in)
			if err != nil {
				return fmt.Errorf("maturity date: %w", err)
			}
			out := datesJSON{
				Index:     idx.Name(),
				Input:     utils.FormatDate(in),
				Fixing:    utils.FormatDate(fix),
				Effective: utils.FormatDate(eff),
				Maturity:  utils.FormatDate(mat),
			}
			return formatter(opts, cmd).Rows(out, nil, [][]string{
				{"fixing", out.Fixing},
				{"effective", out.Effective},
				{"maturity", out.Maturity},
			})
		},
	}
	cmd.Flags().StringVar(&effective, "effective", "", "effective date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("effective")
	return cmd
}

type calendarJSON struct {
	Calendar          string `json:"calendar"`
	Date              string `json:"date"`
	BusinessDay       bool   `json:"business_day"`
	NextOrSame        string `json:"next_or_same"`
	ModifiedFollowing string `json:"modified_following"`
	LastBusinessDay   string `json:"last_business_day_of_month"`
	EndOfMonth        bool   `json:"end_of_month"`
	Holidays          int    `json:"holidays"`
}

// NewCalendarCommand creates the calendar command.
func NewCalendarCommand(opts *RootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "calendar <calendar-id|index>",
		Short: "Show how a holiday calendar treats a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendars.Lookup(args[0])
			if err != nil {
				// Accept an index name and use its calendar.
				idx, lerr := index.Of(opts.registry, args[0])
				if lerr != nil {
					return err
				}
				if cal, err = opts.calendars.Lookup(idx.Calendar().Name()); err != nil {
					return err
				}
			}
			in, err := utils.ParseDate(date)
			if err != nil {
				return err
			}
			out := calendarJSON{
				Calendar:          cal.Name(),
				Date:              utils.FormatDate(in),
				BusinessDay:       cal.IsBusinessDay(in),
				NextOrSame:        utils.FormatDate(cal.NextOrSame(in)),
				ModifiedFollowing: utils.FormatDate(cal.Adjust(in)),
				LastBusinessDay:   utils.FormatDate(cal.LastBusinessDayOfMonth(in)),
				EndOfMonth:        cal.IsEndOfMonth(in),
				Holidays:          cal.Holidays(),
			}
			return formatter(opts, cmd).Rows(out, nil, [][]string{
				{"calendar", out.Calendar},
				{"business day", strconv.FormatBool(out.BusinessDay)},
				{"next or same", out.NextOrSame},
				{"modified following", out.ModifiedFollowing},
				{"last business day of month", out.LastBusinessDay},
				{"end of month", strconv.FormatBool(out.EndOfMonth)},
				{"holidays", strconv.Itoa(out.Holidays)},
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
