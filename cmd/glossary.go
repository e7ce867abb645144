package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/spf13/cobra"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary [query]",
	Short: "Search the dictionary of exam terms",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGlossary,
}

func init() {
	var cats []string
	for _, c := range glossary.Categories() {
		cats = append(cats, string(c))
	}
	glossaryCmd.Flags().StringP("category", "c", "", "Category: "+strings.Join(cats, ", "))
	glossaryCmd.Flags().BoolP("full", "f", false, "Show explanations and examples")
}

func runGlossary(cmd *cobra.Command, args []string) error {
	catVal, _ := cmd.Flags().GetString("category")
	full, _ := cmd.Flags().GetBool("full")

	category, ok := glossary.ParseCategory(catVal)
	if !ok {
		return fmt.Errorf("invalid category %q", catVal)
	}
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	out := cmd.OutOrStdout()
	terms := glossary.Filter(glossary.Terms(), query, category)
	if len(terms) == 0 {
		fmt.Fprintln(out, "No terms found.")
		return nil
	}
	for _, t := range terms {
		printTerm(out, t, full)
	}
	return nil
}

func printTerm(out io.Writer, t glossary.Term, full bool) {
	fmt.Fprintf(out, "%-4s  %s  [%s]\n", t.ID, t.Title, t.Category.Label())
	fmt.Fprintf(out, "      %s\n", t.Description)
	if !full {
		return
	}
	if t.Code != "" {
		fmt.Fprintln(out)
		for _, line := range strings.Split(t.Code, "\n") {
			fmt.Fprintf(out, "      │ %s\n", line)
		}
	}
	fmt.Fprintf(out, "\n      %s\n", t.Explanation)
	fmt.Fprintln(out, "\n"+strings.Repeat("─", 60))
}
