package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "runmeta",
		Short:         "Runmeta flattens Seqera Platform workflow run metadata into a JSON file",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runExtract,
	}

	flags := cmd.Flags()
	flags.StringP("workspace", "w", "", "Seqera Platform workspace name")
	flags.String("workflow_id", "", "workflow run identifier")
	flags.StringP("output", "o", "", "output JSON filename")
	flags.StringP("log_level", "l", "", "log level (CRITICAL, ERROR, WARNING, INFO, DEBUG)")
	flags.String("tw-path", "", "path to the tw executable")
	flags.Bool("cleanup-archive", false, "remove the downloaded archive after extraction")

	_ = cmd.MarkFlagRequired("workspace")
	_ = cmd.MarkFlagRequired("workflow_id")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// normalizeArgs accepts the single-dash -id spelling of the workflow ID
// flag. pflag would read "-id" as the shorthand cluster "i","d", so the
// token is rewritten to --workflow_id before parsing.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case arg == "-id" || arg == "--id":
			out = append(out, "--workflow_id")
		case strings.HasPrefix(arg, "-id="):
			out = append(out, "--workflow_id="+strings.TrimPrefix(arg, "-id="))
		case strings.HasPrefix(arg, "--id="):
			out = append(out, "--workflow_id="+strings.TrimPrefix(arg, "--id="))
		default:
			out = append(out, arg)
		}
	}
	return out
}
