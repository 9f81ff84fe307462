package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/mshafiee/lunisolar"
	"github.com/nathan-osman/go-sunrise"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// today returns the current civil day in the engine's zone.
func (a *app) today() lunisolar.SolarDay {
	return a.engine.FromTime(time.Now()).SolarDay
}

func (a *app) termsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms [year]",
		Short: "List the 24 solar terms of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args, a.today().Year)
			if err != nil {
				return err
			}
			terms, err := a.engine.SolarTerms(year)
			if err != nil {
				return err
			}
			doc := termsDoc{Year: year}
			for _, s := range terms {
				doc.Terms = append(doc.Terms, newTermView(s))
			}
			return a.emit(doc)
		},
	}
}

func (a *app) monthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months [year]",
		Short: "List the lunar months of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args, a.today().Year)
			if err != nil {
				return err
			}
			y, err := a.engine.LunarYear(year)
			if err != nil {
				return err
			}
			return a.emit(newMonthsDoc(y))
		},
	}
}

func (a *app) dayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show the lunar date, day pillar, solar term and daylight of a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.today()
			if len(args) == 1 {
				var err error
				if d, err = parseDate(args[0]); err != nil {
					return err
				}
			}
			ld, err := a.engine.LunarDayOf(d)
			if err != nil {
				return err
			}
			term, err := a.engine.TermOfDay(d)
			if err != nil {
				return err
			}
			doc := dayDoc{
				Date:      d.String(),
				Lunar:     ld.String(),
				LunarYear: ld.Month.Year,
				Month:     ld.Month.Month,
				Leap:      ld.Month.Leap,
				Day:       ld.Day,
				Pillar:    lunisolar.DaySixtyCycle(d).Name(),
				Term:      term.Name(),
				TermDay:   term.Day.String(),
			}
			doc.Sunrise, doc.Sunset = a.daylight(d)
			return a.emit(doc)
		},
	}
	cmd.Flags().Float64("lat", 0, "observer latitude for sunrise and sunset (default from config)")
	cmd.Flags().Float64("lon", 0, "observer longitude for sunrise and sunset (default from config)")
	_ = a.v.BindPFlag("location.latitude", cmd.Flags().Lookup("lat"))
	_ = a.v.BindPFlag("location.longitude", cmd.Flags().Lookup("lon"))
	return cmd
}

// daylight returns sunrise and sunset at the configured location as civil
// clock times, or empty strings during polar day or night.
func (a *app) daylight(d lunisolar.SolarDay) (string, string) {
	loc := a.engine.Time(lunisolar.SolarTime{SolarDay: d, Hour: 12}).Location()
	rise, set := sunrise.SunriseSunset(
		a.cfg.Location.Latitude,
		a.cfg.Location.Longitude,
		d.Year, time.Month(d.Month), d.Day,
	)
	if rise.IsZero() || set.IsZero() {
		a.logger.Debug("no sunrise", zap.Stringer("day", d))
		return "", ""
	}
	return rise.In(loc).Format("15:04:05"), set.In(loc).Format("15:04:05")
}

func (a *app) pillarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pillars YYYY-MM-DD [HH:MM[:SS]]",
		Short: "Show the year, month, day and hour pillars of an instant",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseTime(args)
			if err != nil {
				return err
			}
			p, err := a.engine.Pillars(st)
			if err != nil {
				return err
			}
			h, err := a.engine.LunarHour(st)
			if err != nil {
				return err
			}
			return a.emit(pillarsDoc{
				Time:      st.String(),
				Year:      p.Year.Name(),
				Month:     p.Month.Name(),
				Day:       p.Day.Name(),
				Hour:      p.Hour.Name(),
				LunarHour: h.Name(),
				RatHour:   a.engine.RatHour().Name(),
			})
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var jd float64
	cmd := &cobra.Command{
		Use:   "convert [YYYY-MM-DD [HH:MM[:SS]]]",
		Short: "Convert between civil time and Julian Day",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var st lunisolar.SolarTime
			switch {
			case cmd.Flags().Changed("jd"):
				st = lunisolar.JulianDay(jd).SolarTime()
			case len(args) > 0:
				var err error
				if st, err = parseTime(args); err != nil {
					return err
				}
			default:
				st = a.engine.FromTime(time.Now())
			}
			return a.emit(convertDoc{
				Time:      st.String(),
				JulianDay: float64(st.JulianDay()),
				RFC3339:   a.engine.Time(st).Format(time.RFC3339),
			})
		},
	}
	cmd.Flags().Float64Var(&jd, "jd", 0, "Julian Day to convert to civil time")
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode a correction table (text or binary) and list its corrected buckets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			t, err := lunisolar.ReadCorrections(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.logger.Debug("decoded corrections",
				zap.String("file", args[0]),
				zap.Int("buckets", t.Len()))

			if out != "" {
				if err := writeBinary(out, t); err != nil {
					return err
				}
				a.logger.Info("wrote binary corrections", zap.String("file", out))
			}

			doc := decodeDoc{Source: args[0], Buckets: t.Len(), Entries: []entryView{}}
			for _, e := range t.Entries() {
				doc.Entries = append(doc.Entries, entryView{Bucket: e.Bucket, Offset: int(e.Offset)})
			}
			return a.emit(doc)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "also write the table in binary form to this file")
	return cmd
}

func writeBinary(path string, t *lunisolar.CorrectionTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := lunisolar.WriteCorrections(w, t); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a *app) rabByungCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rabbyung [year]",
		Short: "Show the Tibetan Rab-Byung attributes and months of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args, a.today().Year)
			if err != nil {
				return err
			}
			y, err := lunisolar.NewRabByungYear(year)
			if err != nil {
				return err
			}
			return a.emit(newRabByungDoc(y))
		},
	}
}

func (a *app) newMoonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "newmoon [YYYY-MM-DD]",
		Short: "Show the exact instant of the new moon near a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.today()
			if len(args) == 1 {
				var err error
				if d, err = parseDate(args[0]); err != nil {
					return err
				}
			}
			jd := a.engine.NewMoonNear(d)
			return a.emit(newMoonDoc{
				Near:      d.String(),
				Instant:   jd.SolarTime().String(),
				JulianDay: float64(jd),
			})
		},
	}
}

func (a *app) warmCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Precompute and cache the lunar months of a year range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			if err := a.engine.Warm(cmd.Context(), from, to); err != nil {
				return err
			}
			elapsed := time.Since(start)
			a.logger.Info("cache warmed",
				zap.Int("from", from),
				zap.Int("to", to),
				zap.Duration("elapsed", elapsed))
			return a.emit(warmDoc{From: from, To: to, Elapsed: elapsed.Round(time.Millisecond).String()})
		},
	}
	this := time.Now().Year()
	cmd.Flags().IntVar(&from, "from", this-10, "first lunar year")
	cmd.Flags().IntVar(&to, "to", this+10, "last lunar year")
	return cmd
}
