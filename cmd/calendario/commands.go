package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

const defaultSeedFile = "002_seed_festivos.sql"

type options struct {
	timezone string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "calendario",
		Short:         "Calendario hábil colombiano",
		Long:          `Cuenta y proyecta días hábiles (lunes a viernes sin festivos) y genera el SQL de festivos.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.timezone, "tz", "America/Bogota", "zona horaria de las fechas")

	root.AddCommand(
		newContarCmd(opts),
		newSumarCmd(opts),
		newFestivosCmd(opts),
		newSembrarCmd(opts),
	)
	return root
}

// calendar usa siempre las reglas de festivos calculadas: la CLI no se conecta a la base.
func (o *options) calendar() (*calendar.Calendar, *time.Location, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("zona horaria %q: %w", o.timezone, err)
	}
	return calendar.New(calendar.NewStaticSource(loc), loc, zerolog.Nop()), loc, nil
}

func newContarCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "contar DESDE HASTA",
		Short: "Días hábiles en (DESDE, HASTA]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, loc, err := opts.calendar()
			if err != nil {
				return err
			}
			desde, err := dates.Parse(args[0], loc)
			if err != nil {
				return fmt.Errorf("desde: %w", err)
			}
			hasta, err := dates.Parse(args[1], loc)
			if err != nil {
				return fmt.Errorf("hasta: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cal.CountBusinessDays(cmd.Context(), desde, hasta))
			return nil
		},
	}
}

func newSumarCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sumar DESDE DIAS",
		Short: "Fecha resultante de sumar DIAS hábiles a DESDE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, loc, err := opts.calendar()
			if err != nil {
				return err
			}
			desde, err := dates.Parse(args[0], loc)
			if err != nil {
				return fmt.Errorf("desde: %w", err)
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("dias %q no es un entero", args[1])
			}
			limite, err := cal.AddBusinessDays(cmd.Context(), desde, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dates.Key(limite))
			return nil
		},
	}
}

func newFestivosCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "festivos [ANIO]",
		Short: "Lista los festivos de un año",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, loc, err := opts.calendar()
			if err != nil {
				return err
			}
			year := time.Now().In(loc).Year()
			if len(args) == 1 {
				if year, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("año %q inválido", args[0])
				}
			}
			hs, err := cal.Holidays(cmd.Context(), year)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FECHA\tDIA\tNOMBRE")
			for _, h := range hs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", dates.Key(h.Date), weekdayES[h.Date.Weekday()], h.Name)
			}
			return w.Flush()
		},
	}
}

var weekdayES = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

func newSembrarCmd(opts *options) *cobra.Command {
	var desde, hasta int
	var tabla, salida string
	cmd := &cobra.Command{
		Use:   "sembrar",
		Short: "Genera el SQL que puebla la tabla de festivos",
		Long: `Escribe un script idempotente (INSERT ... ON CONFLICT) con los festivos de los años pedidos.
Por defecto lo deja en internal/infrastructure/postgres/migrations/` + defaultSeedFile + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if desde <= 0 || hasta < desde {
				return fmt.Errorf("rango de años inválido: %d-%d", desde, hasta)
			}
			cal, _, err := opts.calendar()
			if err != nil {
				return err
			}
			if salida == "" {
				salida = filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", defaultSeedFile)
			}
			var out io.Writer = cmd.OutOrStdout()
			if salida != "-" {
				f, err := os.Create(salida)
				if err != nil {
					return fmt.Errorf("crear archivo: %w", err)
				}
				defer f.Close()
				out = f
			}
			n, err := writeSeed(cmd.Context(), out, cal, tabla, desde, hasta)
			if err != nil {
				return err
			}
			if salida != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Generado %s: %d festivos (%d-%d)\n", salida, n, desde, hasta)
			}
			return nil
		},
	}
	now := time.Now().Year()
	cmd.Flags().IntVar(&desde, "desde", now, "primer año")
	cmd.Flags().IntVar(&hasta, "hasta", now+5, "último año")
	cmd.Flags().StringVar(&tabla, "tabla", "festivos_colombia", "tabla destino")
	cmd.Flags().StringVarP(&salida, "salida", "o", "", `archivo de salida ("-" para stdout)`)
	return cmd
}

func writeSeed(ctx context.Context, w io.Writer, cal *calendar.Calendar, tabla string, desde, hasta int) (int, error) {
	var b strings.Builder
	b.WriteString("-- Festivos de Colombia (Ley 51 de 1983)\n")
	fmt.Fprintf(&b, "-- Generado por cmd/calendario para %d-%d\n\n", desde, hasta)

	total := 0
	for year := desde; year <= hasta; year++ {
		hs, err := cal.Holidays(ctx, year)
		if err != nil {
			return 0, err
		}
		if len(hs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "-- %d\n", year)
		fmt.Fprintf(&b, "INSERT INTO %s (fecha, nombre) VALUES\n", tabla)
		for i, h := range hs {
			sep := ","
			if i == len(hs)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "  ('%s', '%s')%s\n", dates.Key(h.Date), escapeSQL(h.Name), sep)
		}
		b.WriteString("ON CONFLICT (fecha) DO UPDATE SET nombre = EXCLUDED.nombre;\n\n")
		total += len(hs)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return 0, err
	}
	return total, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
