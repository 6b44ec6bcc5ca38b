// report.go implements "aiinterview report" for browsing local history.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/krish230803/Ai-Interview-System/internal/config"
	"github.com/krish230803/Ai-Interview-System/internal/session"
)

var (
	reportLimit int
	reportID    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show past interview results",
	Long: `Display completed interviews saved in local history. Without flags
the most recent interviews are listed; use --id to show the full
question-by-question breakdown of one interview.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}

	store, err := session.NewStore(filepath.Join(dir, historyFile))
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if reportID != "" {
		return printInterview(store, reportID)
	}
	return printSummaries(store)
}

func printSummaries(store *session.Store) error {
	summaries, err := store.ListInterviews(reportLimit)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No completed interviews yet. Start one with: aiinterview")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %-9s  %s\n", "ID", "Completed", "Avg Score", "Questions")
	for _, s := range summaries {
		fmt.Printf("%-36s  %-19s  %-9.2f  %d\n",
			s.ID, s.CompletedAt.Format("2006-01-02 15:04:05"), s.AverageScore, s.TotalQuestions)
	}
	return nil
}

func printInterview(store *session.Store, id string) error {
	rec, err := store.GetInterview(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no interview with id %s", id)
	}

	fmt.Printf("Interview %s\n", rec.ID)
	fmt.Printf("Completed:  %s\n", rec.CompletedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Avg score:  %.2f\n", rec.AverageScore)
	fmt.Printf("Questions:  %d\n", rec.TotalQuestions)

	responses, err := store.GetResponses(id)
	if err != nil {
		return err
	}
	for _, r := range responses {
		fmt.Printf("\nQ%d: %s\n", r.QuestionNumber, r.Question)
		fmt.Printf("A:  %s\n", r.Answer)
		if r.Sentiment != "" {
			fmt.Printf("    sentiment: %s, score: %.2f\n", r.Sentiment, r.Score)
		} else {
			fmt.Printf("    score: %.2f\n", r.Score)
		}
	}
	return nil
}

func init() {
	reportCmd.Flags().IntVar(&reportLimit, "limit", 10, "Number of interviews to list")
	reportCmd.Flags().StringVar(&reportID, "id", "", "Show the full breakdown of one interview")
}
