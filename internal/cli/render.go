package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fluentcat/catalog"
	"fluentcat/locales"
)

var (
	renderLocale   string
	renderArgs     []string
	renderEmbedded bool
)

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render KEY [dir]",
		Short: "Render a message",
		Long:  `Resolve KEY for a locale and print the rendered string, evaluating plural selection and substituting --arg values into placeholders.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runRender,
	}
	cmd.Flags().StringVarP(&renderLocale, "locale", "l", "", "Locale to render (default: the configured default_locale)")
	cmd.Flags().StringArrayVarP(&renderArgs, "arg", "a", nil, "Message argument as name=value (repeatable)")
	cmd.Flags().BoolVar(&renderEmbedded, "embedded", false, "Render from the embedded applet resources instead of a directory")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	key := args[0]

	var (
		cat *catalog.Catalog
		err error
	)
	if renderEmbedded {
		cat, err = locales.New(cfg.DefaultLocale)
	} else {
		cat = catalog.New(cfg.DefaultLocale)
		err = cat.LoadFS(os.DirFS(localesDir(args[1:])), "*.ftl")
	}
	if err != nil {
		return err
	}

	locale := renderLocale
	if locale == "" {
		locale = cfg.DefaultLocale
	}

	msgArgs, err := parseArgs(renderArgs)
	if err != nil {
		return err
	}

	out, err := cat.Render(locale, key, msgArgs)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// parseArgs turns name=value pairs into message arguments, preferring
// numeric values so plural selection works from the command line.
func parseArgs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --arg %q, want name=value", pair)
		}
		if n, err := strconv.Atoi(value); err == nil {
			args[name] = n
		} else if f, err := strconv.ParseFloat(value, 64); err == nil {
			args[name] = f
		} else {
			args[name] = value
		}
	}
	return args, nil
}
