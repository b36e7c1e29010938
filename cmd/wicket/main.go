// Package main provides the CLI entrypoint for wicket.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wicket/internal/config"
	"github.com/verte-zerg/wicket/internal/generator"
	"github.com/verte-zerg/wicket/internal/model"
	"github.com/verte-zerg/wicket/internal/season"
	"github.com/verte-zerg/wicket/internal/stats"
	"github.com/verte-zerg/wicket/internal/statsui"
	"github.com/verte-zerg/wicket/internal/store"
)

const (
	defaultMatches = 10
	defaultTop     = stats.DefaultTop
)

var (
	dataPath   string
	seasonName string

	lookupRows bool

	reportTeams        []string
	reportBowlingTeams []string
	reportInnings      []int
	reportTop          int

	exportOut string

	sampleMatches int
	sampleSeed    int64
	sampleOut     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wicket",
		Short:         "Cricket season statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "deliveries CSV file")
	rootCmd.PersistentFlags().StringVar(&seasonName, "season", "", "stored season snapshot to load instead of CSV")
	rootCmd.Flags().IntVar(&reportTop, "top", defaultTop, "number of players per ranking")

	rootCmd.AddCommand(newBattingCmd())
	rootCmd.AddCommand(newBowlingCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newSeasonsCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "top", &reportTop, fileCfg.Report.Top)
	if reportTop <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	exportPath := config.DefaultExportPath()
	if fileCfg.Export.Path != nil {
		exportPath = *fileCfg.Export.Path
	}

	st, title, err := openDataset(cmd.Context())
	if err != nil {
		return err
	}

	m := statsui.NewModel(st, statsui.Settings{
		Title:      title,
		Top:        reportTop,
		ExportPath: exportPath,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newBattingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batting NAME",
		Short: "Show batting figures for a striker",
		Args:  cobra.ExactArgs(1),
		RunE:  runBattingCmd,
	}
	cmd.Flags().BoolVar(&lookupRows, "rows", false, "also print the matched deliveries")
	return cmd
}

func runBattingCmd(cmd *cobra.Command, args []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	st, _, err := openDataset(cmd.Context())
	if err != nil {
		return err
	}
	figures, rows, err := stats.Batting(st, args[0])
	if err != nil {
		return lookupError(err, "Player not found.")
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderBatting(out, figures); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if lookupRows {
		if err := stats.RenderDeliveries(out, rows); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newBowlingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bowling NAME",
		Short: "Show bowling figures for a bowler",
		Args:  cobra.ExactArgs(1),
		RunE:  runBowlingCmd,
	}
	cmd.Flags().BoolVar(&lookupRows, "rows", false, "also print the matched deliveries")
	return cmd
}

func runBowlingCmd(cmd *cobra.Command, args []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	st, _, err := openDataset(cmd.Context())
	if err != nil {
		return err
	}
	figures, rows, err := stats.Bowling(st, args[0])
	if err != nil {
		return lookupError(err, "Bowler not found.")
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderBowling(out, figures); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if lookupRows {
		if err := stats.RenderDeliveries(out, rows); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func lookupError(err error, notFound string) error {
	switch {
	case errors.Is(err, stats.ErrNotFound):
		logErrln(notFound)
	case errors.Is(err, stats.ErrEmptyQuery):
		logErrln("Enter a player name.")
	}
	return err
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print rankings and breakdowns as bar charts",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	addFilterFlags(cmd)
	cmd.Flags().IntVar(&reportTop, "top", defaultTop, "number of players per ranking")
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "top", &reportTop, fileCfg.Report.Top)
	if reportTop <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	st, title, err := openDataset(cmd.Context())
	if err != nil {
		return err
	}
	spec := resolveFilterSpec(cmd, st)
	report := stats.BuildReport(st, spec, reportTop)

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s\n", title); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderReport(out, report, 0, false); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered deliveries as CSV",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	addFilterFlags(cmd)
	cmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	st, _, err := openDataset(cmd.Context())
	if err != nil {
		return err
	}
	view := season.Apply(st, resolveFilterSpec(cmd, st))

	if exportOut == "" || exportOut == "-" {
		if err := season.WritePortable(cmd.OutOrStdout(), view); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return nil
	}
	if err := season.WritePortableFile(exportOut, view); err != nil {
		return err
	}
	logErrf("Wrote %d deliveries to %s\n", view.Len(), exportOut)
	return nil
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Store a deliveries CSV as a named season (--season NAME, default: file name)",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	name := strings.TrimSpace(seasonName)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if name == "" {
		return fmt.Errorf("season name must not be empty")
	}

	loaded, err := season.LoadStore(path)
	if err != nil {
		return err
	}
	rows := loaded.All().Deliveries()
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	if _, err := db.SaveSeason(cmd.Context(), name, abs, time.Now().UTC(), rows); err != nil {
		return fmt.Errorf("failed to save season: %w", err)
	}
	logErrf("Imported %d deliveries as %q\n", len(rows), name)
	return nil
}

func newSeasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "List stored season snapshots",
		Args:  cobra.NoArgs,
		RunE:  runSeasonsCmd,
	}
}

func runSeasonsCmd(cmd *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	seasons, err := db.ListSeasons(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list seasons: %w", err)
	}
	if len(seasons) == 0 {
		logErrln("No seasons stored. Import one with: wicket import FILE")
		return nil
	}
	rows := make([][]string, 0, len(seasons))
	for _, s := range seasons {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Rows),
			s.ImportedAt.Local().Format("2006-01-02 15:04"),
			s.SourcePath,
		})
	}
	headers := []string{"Season", "Deliveries", "Imported", "Source"}
	if err := stats.WriteTable(cmd.OutOrStdout(), headers, rows, map[int]bool{1: true}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a synthetic season as CSV",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
	cmd.Flags().IntVar(&sampleMatches, "matches", defaultMatches, "number of matches")
	cmd.Flags().Int64Var(&sampleSeed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().StringVar(&sampleOut, "out", "", "output file (default: stdout)")
	return cmd
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	if sampleMatches <= 0 {
		return fmt.Errorf("--matches must be > 0")
	}
	gen := generator.New()
	if cmd.Flags().Changed("seed") {
		gen = generator.NewSeeded(sampleSeed)
	}
	st := season.NewStore(gen.Season(sampleMatches))

	if sampleOut == "" || sampleOut == "-" {
		w := bufio.NewWriter(cmd.OutOrStdout())
		if err := season.WritePortable(w, st.All()); err != nil {
			return fmt.Errorf("failed to write sample: %w", err)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush sample: %w", err)
		}
		return nil
	}
	if err := season.WritePortableFile(sampleOut, st.All()); err != nil {
		return err
	}
	logErrf("Wrote %d deliveries to %s\n", st.Len(), sampleOut)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&reportTeams, "team", nil, "batting team to include (repeatable, default: all)")
	cmd.Flags().StringArrayVar(&reportBowlingTeams, "bowling-team", nil, "bowling team to include (repeatable, default: all)")
	cmd.Flags().IntSliceVar(&reportInnings, "innings", nil, "innings to include (repeatable, default: all)")
}

// resolveFilterSpec builds the filter from the filter flags. A flag that was
// not given selects every value present in the store.
func resolveFilterSpec(cmd *cobra.Command, st *season.Store) model.FilterSpec {
	batting := st.BattingTeams()
	if cmd.Flags().Changed("team") {
		batting = reportTeams
	}
	bowling := st.BowlingTeams()
	if cmd.Flags().Changed("bowling-team") {
		bowling = reportBowlingTeams
	}
	innings := st.Innings()
	if cmd.Flags().Changed("innings") {
		innings = reportInnings
	}
	return model.NewFilterSpec(batting, bowling, innings)
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data", &dataPath, fileCfg.Data.Path)
	applyStringConfig(cmd, "season", &seasonName, fileCfg.Data.Season)
	return fileCfg, nil
}

// openDataset loads the selected season. A stored snapshot takes precedence
// over a CSV path when both are set.
func openDataset(ctx context.Context) (*season.Store, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if name := strings.TrimSpace(seasonName); name != "" {
		db, err := openDB()
		if err != nil {
			return nil, "", err
		}
		defer closeDB(db)
		rows, err := db.LoadSeason(ctx, name)
		if err != nil {
			if errors.Is(err, store.ErrSeasonNotFound) {
				logErrln("Run: wicket seasons")
			}
			return nil, "", fmt.Errorf("failed to load season: %w", err)
		}
		return season.NewStore(rows), name, nil
	}
	if dataPath == "" {
		logErrln("Pass a CSV with --data FILE, a snapshot with --season NAME, or set [data] in: wicket config")
		logErrln("Try a synthetic season: wicket sample --out season.csv")
		return nil, "", fmt.Errorf("no dataset selected")
	}
	st, err := season.LoadStore(dataPath)
	if err != nil {
		return nil, "", err
	}
	return st, filepath.Base(dataPath), nil
}

func openDB() (*store.Store, error) {
	db, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return db, nil
}

func closeDB(db *store.Store) {
	if cerr := db.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flag(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flag(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wicket configuration
# Uncomment a value to enable it. CLI flags override config values.

[data]
# path = "ipl_2025_deliveries.csv"  # Deliveries CSV (same as --data)
# season = "ipl-2025"               # Stored snapshot (same as --season)

[report]
# top = %d                          # Players per ranking

[export]
# path = %q
`,
		defaultTop,
		config.DefaultExportPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
