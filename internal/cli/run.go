// run.go implements "aiinterview run", the non-interactive interview
// loop for piped or scripted use.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/flow"
	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interview over stdin/stdout",
	Long: `Run an interview without the TUI. Questions are printed to stdout
and answers are read from stdin, one answer per line. The results
summary is printed when the interview completes.`,
	RunE: runInterview,
}

func runInterview(cmd *cobra.Command, args []string) error {
	deps, closeDeps, err := buildDeps()
	if err != nil {
		return err
	}
	defer closeDeps()

	ctx := context.Background()
	if deps.Auth.CheckAuth(ctx) == nil {
		return fmt.Errorf("not signed in; run 'aiinterview login' first")
	}

	start, err := deps.Flow.Start(ctx)
	if err != nil {
		return err
	}
	if start.RedirectLogin {
		return fmt.Errorf("session expired; run 'aiinterview login' again")
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	question := start.Question
	number := start.QuestionNumber
	for {
		fmt.Printf("\nQuestion %d/%d: %s\n> ", number, deps.Session.TotalQuestions(), question)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading answer: %w", err)
			}
			return fmt.Errorf("stdin closed before the interview completed")
		}
		answer := strings.TrimSpace(scanner.Text())

		res, err := deps.Flow.SubmitAnswer(ctx, answer, api.InputText)
		if err != nil {
			if errors.Is(err, flow.ErrEmptyAnswer) {
				fmt.Println("Please provide an answer.")
				continue
			}
			return err
		}
		if res.RedirectLogin {
			return fmt.Errorf("session expired; run 'aiinterview login' again")
		}

		if res.Completed {
			return printResults(deps, res)
		}

		if verbose && res.Sentiment != "" {
			fmt.Printf("(sentiment: %s)\n", res.Sentiment)
		}
		question = res.NextQuestion
		number = res.QuestionNumber
	}
}

func printResults(deps tui.Deps, res *flow.SubmitResult) error {
	content, err := deps.Renderer.Render(res.Stats, deps.Session.Elapsed())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(content)

	if deps.History != nil {
		if _, err := deps.History.SaveResult(deps.Session.StartTime(), res.Stats); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save to local history: %v\n", err)
		}
	}
	return nil
}
