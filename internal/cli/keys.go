package cli

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"fluentcat/fluent"
)

func newKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [dir]",
		Short: "List message keys per locale",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runKeys,
	}
}

func runKeys(cmd *cobra.Command, args []string) error {
	dir := localesDir(args)
	fsys := os.DirFS(dir)
	files, err := fs.Glob(fsys, "*.ftl")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resources in %s", dir)
	}
	sort.Strings(files)

	out := cmd.OutOrStdout()
	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return err
		}
		res, err := fluent.Parse(file, src)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d keys\n", file, len(res.Messages))
		for _, key := range res.Keys() {
			fmt.Fprintf(out, "  %s\n", key)
		}
	}
	return nil
}
