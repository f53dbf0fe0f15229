package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqrecon/internal/judge"
)

var answersPath string

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify an answer file against a judge input",
		Long: `Reads test cases (--input, default stdin) and answers (--answers) and checks
that each answer's pairwise minimums reproduce the case's values exactly.

Example:
  seqrecon gen --seed 7 > cases.txt
  seqrecon -i cases.txt > answers.txt
  seqrecon check -i cases.txt --answers answers.txt`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	checkCmd.Flags().StringVarP(&answersPath, "answers", "a", "", "Answer file (required)")
	_ = checkCmd.MarkFlagRequired("answers")
	return checkCmd
}

// runCheck prints a verdict per rejected case and fails if any were rejected.
func runCheck(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(cmd, inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	answers, err := os.Open(answersPath)
	if err != nil {
		return fmt.Errorf("failed to open answers: %w", err)
	}
	defer answers.Close()

	report, err := judge.Check(in, answers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range report.Failures {
		fmt.Fprintf(out, "%s case %d: %v\n", failStyle.Render("WRONG"), f.Index, f.Err)
	}
	logger.Info("Check complete",
		zap.Int("cases", report.Cases),
		zap.Int("rejected", len(report.Failures)))

	if !report.OK() {
		fmt.Fprintf(out, "%s %d/%d cases\n", failStyle.Render("FAILED"), len(report.Failures), report.Cases)
		return fmt.Errorf("%d of %d answers rejected", len(report.Failures), report.Cases)
	}
	fmt.Fprintf(out, "%s %d/%d cases\n", okStyle.Render("OK"), report.Cases, report.Cases)
	return nil
}
