package cli

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osuc/buscacursos/internal/calendar"
	"github.com/osuc/buscacursos/internal/config"
	"github.com/osuc/buscacursos/internal/course"
	"github.com/osuc/buscacursos/internal/filter"
	"github.com/osuc/buscacursos/internal/logger"
	"github.com/osuc/buscacursos/internal/scraper"
	"github.com/osuc/buscacursos/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitChanges = 2
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool

	flagSubject  string
	flagYear     int
	flagSemester int

	flagSchool      []string
	flagCampus      []string
	flagModule      []string
	flagInEnglish   bool
	flagWithVacancy bool

	flagDataDir string
	flagSection int
	flagOutput  string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buscacursos",
		Short: "Scrape the UC course catalog from the command line",
		Long: `A CLI tool to query buscacursos.uc.cl: search course sections,
list available academic terms, track vacancy changes across runs, and
export a section's weekly schedule as an iCalendar file.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output and debug logging")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newTermsCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newICSCmd())

	return cmd
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search course sections for a subject code and term",
		RunE:  runSearch,
	}
	addTermFlags(cmd)
	cmd.Flags().StringSliceVar(&flagSchool, "school", nil, "Filter by academic unit (substring match)")
	cmd.Flags().StringSliceVar(&flagCampus, "campus", nil, "Filter by campus")
	cmd.Flags().StringSliceVar(&flagModule, "module", nil, "Filter by occupied module slot, e.g. W3")
	cmd.Flags().BoolVar(&flagInEnglish, "in-english", false, "Only sections taught in English")
	cmd.Flags().BoolVar(&flagWithVacancy, "with-vacancy", false, "Only sections with available seats")
	return cmd
}

func newTermsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List the academic terms the search page supports",
		RunE:  runTerms,
	}
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Diff a subject's sections against the last saved snapshot",
		Long: `Scrapes a subject, compares the result with the previous snapshot for the
same subject and term, reports added and removed sections and vacancy
changes, and saves the new snapshot. Exits with code 2 when changes were
found.`,
		RunE: runCheck,
	}
	addTermFlags(cmd)
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots (overrides config)")
	return cmd
}

func newICSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export a section's weekly schedule as an iCalendar file",
		RunE:  runICS,
	}
	addTermFlags(cmd)
	cmd.Flags().IntVar(&flagSection, "section", 1, "Section number to export")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func addTermFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSubject, "sigla", "", "Subject code, e.g. IIC2233 (required)")
	cmd.Flags().IntVar(&flagYear, "year", 0, "Academic year (required)")
	cmd.Flags().IntVar(&flagSemester, "semester", 1, "Period: 1, 2 or 3 (TAV)")
	cmd.MarkFlagRequired("sigla")
	cmd.MarkFlagRequired("year")
}

// setup loads config and builds the scraper shared by all subcommands.
func setup() (*config.Config, *scraper.Scraper, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Logging.Level
	if flagVerbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Level: level, Pretty: cfg.Logging.Pretty})

	sc := scraper.New(
		scraper.WithBaseURL(cfg.Scraper.BaseURL),
		scraper.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout()}),
		scraper.WithLogger(log),
	)
	return cfg, sc, nil
}

func outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

func currentTerm() course.Term {
	return course.Term{Year: flagYear, Period: flagSemester}
}

func searchFilter() *filter.Filter {
	f := &filter.Filter{
		Schools:     flagSchool,
		Campuses:    flagCampus,
		Modules:     flagModule,
		WithVacancy: flagWithVacancy,
	}
	if flagInEnglish {
		inEnglish := true
		f.InEnglish = &inEnglish
	}
	return f
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	_, sc, err := setup()
	if err != nil {
		return err
	}

	courses, err := sc.FetchCourses(cmd.Context(), flagSubject, currentTerm())
	if err != nil {
		return fmt.Errorf("fetching courses: %w", err)
	}
	courses = searchFilter().Apply(courses)

	return WriteCourses(os.Stdout, courses, format, flagVerbose)
}

func runTerms(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	_, sc, err := setup()
	if err != nil {
		return err
	}

	terms, err := sc.FetchTerms(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching terms: %w", err)
	}

	return WriteTerms(os.Stdout, terms, format)
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	cfg, sc, err := setup()
	if err != nil {
		return err
	}

	dataDir := cfg.Storage.DataDir
	if flagDataDir != "" {
		dataDir = flagDataDir
	}
	store, err := storage.New(dataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	term := currentTerm()
	previous, err := store.LoadSnapshot(flagSubject, term)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	courses, err := sc.FetchCourses(cmd.Context(), flagSubject, term)
	if err != nil {
		return fmt.Errorf("fetching courses: %w", err)
	}

	changes := course.Diff(previous, courses)

	if err := store.SaveCourses(courses, flagSubject, term); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if err := WriteChanges(os.Stdout, changes, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if !changes.Empty() {
		os.Exit(ExitChanges)
	}
	return nil
}

func runICS(cmd *cobra.Command, args []string) error {
	_, sc, err := setup()
	if err != nil {
		return err
	}

	courses, err := sc.FetchCourses(cmd.Context(), flagSubject, currentTerm())
	if err != nil {
		return fmt.Errorf("fetching courses: %w", err)
	}

	for _, c := range courses {
		if c.Section != flagSection {
			continue
		}
		ics, err := calendar.BuildICS(c)
		if err != nil {
			return err
		}
		if flagOutput == "" {
			fmt.Fprint(os.Stdout, ics)
			return nil
		}
		if err := os.WriteFile(flagOutput, []byte(ics), 0644); err != nil {
			return fmt.Errorf("writing ICS file: %w", err)
		}
		return nil
	}
	return fmt.Errorf("section %d of %s not found", flagSection, flagSubject)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
