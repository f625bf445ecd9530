package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fluentcat/internal/lint"
)

func newLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [dir]",
		Short: "Validate Fluent resources",
		Long:  `Parse every .ftl file in the directory and report syntax errors, keys missing from some locales, placeholder mismatches between translations, and invalid plural variants.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLint,
	}
}

func runLint(cmd *cobra.Command, args []string) error {
	dir := localesDir(args)
	problems, err := lint.Check(os.DirFS(dir), "*.ftl")
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s) in %s", len(problems), dir)
	}
	log.Info("resources are clean", "dir", dir)
	return nil
}
