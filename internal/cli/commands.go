package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bikram/internal/bs"
	"bikram/internal/config"
	"bikram/internal/log"
	"bikram/internal/services"
)

// Options customises the command tree. Zero values use the real clock.
type Options struct {
	Now func() time.Time
}

type app struct {
	opts   Options
	cfg    *config.Config
	logger *log.Logger
	svc    *services.CalendarService
	nepali bool
}

// NewRootCommand creates the bikram command with all subcommands attached.
func NewRootCommand(opts Options) *cobra.Command {
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:           "bikram",
		Short:         "Bikram Sambat calendar conversions",
		Long:          "Convert between Bikram Sambat and Gregorian dates, print BS month grids and format Nepali numerals, on the command line or over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&a.nepali, "nepali", false, "Print Devanagari digits and Nepali names")

	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newADToBSCommand(a))
	rootCmd.AddCommand(newBSToADCommand(a))
	rootCmd.AddCommand(newTodayCommand(a))
	rootCmd.AddCommand(newMonthCommand(a))
	rootCmd.AddCommand(newNumeralsCommand(a))
	rootCmd.AddCommand(newCurrencyCommand(a))
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	LoadEnvFile()
	bootstrap := log.New(log.Config{Format: "text", Output: cmd.ErrOrStderr()})
	cfg, err := LoadAndValidateConfig(bootstrap)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Only the server logs to stdout; everything else keeps stdout for results.
	out := cmd.ErrOrStderr()
	if cmd.Name() == "serve" {
		out = cmd.OutOrStdout()
	}
	a.logger = SetupLogger(cfg, out)

	a.svc, err = NewService(cfg, a.logger, services.Options{Now: a.opts.Now})
	return err
}

func (a *app) lang() bs.Language {
	if a.nepali {
		return bs.Nepali
	}
	return bs.English
}

func (a *app) digits(s string) string {
	if a.nepali {
		return bs.ToNepaliNumerals(s)
	}
	return s
}

func newADToBSCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ad2bs [YYYY-MM-DD]",
		Short: "Convert a Gregorian date to Bikram Sambat (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var t time.Time
			if len(args) == 0 {
				_, now, err := a.svc.Today(cmd.Context())
				if err != nil {
					return err
				}
				t = now
			} else {
				var err error
				t, err = time.Parse("2006-01-02", bs.ToASCIIDigits(strings.TrimSpace(args[0])))
				if err != nil {
					return fmt.Errorf("%w: %q", bs.ErrMalformedDate, args[0])
				}
			}

			d, err := a.svc.ADToBS(cmd.Context(), t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.digits(d.String()))
			return nil
		},
	}
}

func newBSToADCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bs2ad YYYY-MM-DD",
		Short: "Convert a Bikram Sambat date to Gregorian",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ad, err := a.svc.BSToAD(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.digits(ad.Format("2006-01-02")))
			return nil
		},
	}
}

func newTodayCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's Bikram Sambat date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, now, err := a.svc.Today(cmd.Context())
			if err != nil {
				return err
			}
			name, _ := bs.MonthName(d.Month, a.lang())
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s %s %s)\n",
				a.digits(d.String()),
				bs.WeekdayName(now.Weekday(), a.lang()),
				a.digits(strconv.Itoa(d.Day)), name, a.digits(strconv.Itoa(d.Year)))
			return nil
		},
	}
}

func newMonthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "month YEAR MONTH",
		Short: "Print the calendar grid of a Bikram Sambat month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(bs.ToASCIIDigits(args[0]))
			if err != nil {
				return fmt.Errorf("%w: year %q", bs.ErrMalformedDate, args[0])
			}
			month, err := strconv.Atoi(bs.ToASCIIDigits(args[1]))
			if err != nil {
				return fmt.Errorf("%w: month %q", bs.ErrMalformedDate, args[1])
			}

			m, err := a.svc.Month(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMonth(m, a.lang()))
			return nil
		},
	}
}

func newNumeralsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "numerals VALUE",
		Short: "Render a value with Devanagari digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.WithComponent(log.ComponentCLI).Debug("Rendering numerals", log.FieldOperation, log.OpNumerals)
			fmt.Fprintln(cmd.OutOrStdout(), a.svc.Numerals(args[0]))
			return nil
		},
	}
}

func newCurrencyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "currency AMOUNT",
		Short: "Format an amount in Lakh/Crore grouping with Devanagari digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, formatted, err := a.svc.Currency(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}
}

// renderMonth lays a month out as a Sunday-first grid.
func renderMonth(m bs.Month, lang bs.Language) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", m.Name(lang), m.Year)
	ad := fmt.Sprintf("%s .. %s", m.Start.Format("2006-01-02"), m.End.Format("2006-01-02"))
	if lang == bs.Nepali {
		title = bs.ToNepaliNumerals(title)
		ad = bs.ToNepaliNumerals(ad)
	}
	fmt.Fprintf(&b, "%s (%s)\n", title, ad)

	for w := time.Sunday; w <= time.Saturday; w++ {
		fmt.Fprintf(&b, "%5s", bs.WeekdayName(w, lang))
	}
	b.WriteByte('\n')

	for _, week := range m.Weeks() {
		for _, day := range week {
			cell := ""
			if day > 0 {
				cell = strconv.Itoa(day)
				if lang == bs.Nepali {
					cell = bs.ToNepaliNumerals(cell)
				}
			}
			fmt.Fprintf(&b, "%5s", cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
