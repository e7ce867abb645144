package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/llm"
	"github.com/shlvgit07/basmach/internal/questiongen"
	"github.com/shlvgit07/basmach/internal/quiz"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Take a quiz in plain text (no database)",
	Long: `Generate a batch of questions for a topic or a dictionary term and answer
them on stdin.

This is a stateless developer tool: provider calls are not recorded.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic: "+topicList())
	previewCmd.Flags().String("term", "", "Dictionary term ID to practice instead of a topic")
	previewCmd.Flags().String("difficulty", "", "Difficulty: Easy, Medium or Hard (default mixed)")
	previewCmd.Flags().Int("count", quiz.DefaultCount, "Number of questions to generate")
	previewCmd.MarkFlagsMutuallyExclusive("topic", "term")
	previewCmd.MarkFlagsOneRequired("topic", "term")
}

func topicList() string {
	var names []string
	for _, t := range quiz.AllTopics() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	termVal, _ := cmd.Flags().GetString("term")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	start := quiz.Start{Count: count, Difficulty: quiz.Difficulty(diffVal)}
	if !start.Difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q: must be Easy, Medium or Hard", diffVal)
	}
	if termVal != "" {
		term, ok := glossary.Lookup(termVal)
		if !ok {
			return fmt.Errorf("no dictionary term %q (see basmach glossary)", termVal)
		}
		start.TermID = term.ID
		start.Topic = term.Category.Topic()
	} else {
		topic, ok := quiz.ParseTopic(topicVal)
		if !ok {
			return fmt.Errorf("invalid topic %q: must be one of %s", topicVal, topicList())
		}
		start.Topic = topic
	}

	// No EventRepo: logging skipped.
	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	gen := questiongen.New(provider, questiongen.DefaultConfig())

	return playSession(ctx, gen, start, os.Stdin, cmd.OutOrStdout())
}

// playSession drives one quiz session over a line-oriented terminal.
func playSession(ctx context.Context, gen questiongen.Generator, start quiz.Start, in io.Reader, out io.Writer) error {
	s := quiz.Reduce(quiz.New(), start)

	fmt.Fprintf(out, "%s: generating %d questions...\n\n", start.Topic.Label(), s.Count)
	req, _ := s.Pending()
	s = quiz.Reduce(s, questiongen.Fulfill(ctx, gen, req))
	if s.Phase == quiz.PhaseFailed {
		return fmt.Errorf("%s", s.Err)
	}

	scanner := bufio.NewScanner(in)
	for s.Phase == quiz.PhaseReady {
		q, _ := s.Current()
		fmt.Fprintf(out, "── Question %d/%d ──\n", s.Position+1, len(s.Questions))
		fmt.Fprintln(out, q.Prompt)
		if q.Code != "" {
			fmt.Fprintf(out, "\n%s\n", q.Code)
		}
		if q.Illustration != "" {
			fmt.Fprintln(out, "(illustration not shown in text mode)")
		}
		for i, opt := range q.Options {
			if q.OptionsKind == quiz.OptionsSVG {
				opt = fmt.Sprintf("[figure %d]", i+1)
			}
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}

		choice, ok := readChoice(scanner, out, len(q.Options))
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		s = quiz.Reduce(s, quiz.Select{Index: choice})
		s = quiz.Reduce(s, quiz.Submit{})

		if q.IsCorrect(choice) {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %d\n", q.CorrectIndex+1)
		}
		fmt.Fprintf(out, "Explanation: %s\n\n", q.Explanation)
		s = quiz.Reduce(s, quiz.Next{})
	}

	sum := s.Summary()
	fmt.Fprintf(out, "── Summary: %d/%d correct (%d%%) ──\n%s\n", sum.Score, sum.Total, sum.Percentage, sum.Feedback)
	return nil
}

// readChoice prompts until the learner types an option number. It returns
// false when input ends.
func readChoice(scanner *bufio.Scanner, out io.Writer, n int) (int, bool) {
	for {
		fmt.Fprintf(out, "\nYour answer (1-%d): ", n)
		if !scanner.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && v >= 1 && v <= n {
			return v - 1, true
		}
		fmt.Fprintf(out, "Please enter a number between 1 and %d.", n)
	}
}
