package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AnTengye/accreditation/config"
	"github.com/AnTengye/accreditation/service"
	"github.com/spf13/cobra"
)

var (
	statsFile string
	statsTop  int
	statsJSON bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a summary of a contract data set",
	Long: `Print totals, the top universities, departments, degrees and the end date
distribution of a data set. Reads --file when given, otherwise the configured source.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFile, "file", "f", "", "Contract data set file (JSON)")
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "Number of universities to list")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the summary as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if statsFile != "" {
		cfg.Data.Source = config.SourceFile
		cfg.Data.Path = statsFile
	}

	store, err := loadStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	summary := service.Summarize(store.All(), statsTop)
	if statsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	printSummary(cmd.OutOrStdout(), summary)
	return nil
}

func printSummary(w io.Writer, s service.DatasetSummary) {
	fmt.Fprintf(w, "Total contracts: %d\n", s.Total)
	fmt.Fprintf(w, "Universities: %d\n", s.Universities)

	printRanking(w, "Top universities", s.TopUniversities)
	printRanking(w, "Departments", s.Departments)
	printRanking(w, "Degrees", s.Degrees)

	p := s.Periods
	fmt.Fprintln(w, "\nEnd dates:")
	fmt.Fprintf(w, "  ended:            %d\n", p.Ended)
	fmt.Fprintf(w, "  first half 2025:  %d\n", p.H1_2025)
	fmt.Fprintf(w, "  second half 2025: %d\n", p.H2_2025)
	fmt.Fprintf(w, "  2026 and later:   %d\n", p.Future2026)
	fmt.Fprintf(w, "  unknown:          %d\n", p.Unknown)
}

func printRanking(w io.Writer, title string, rows []service.FacetCount) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for i, r := range rows {
		fmt.Fprintf(w, "  %2d. %s: %d\n", i+1, r.Value, r.Count)
	}
}
