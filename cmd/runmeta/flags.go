package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfmeta/runmeta/internal/config"
	"github.com/nfmeta/runmeta/internal/runner"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	if flags.Changed("tw-path") {
		v, err := flags.GetString("tw-path")
		if err != nil {
			return values, fmt.Errorf("parse --tw-path: %w", err)
		}
		values.TwPath = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("log_level") {
		v, err := flags.GetString("log_level")
		if err != nil {
			return values, fmt.Errorf("parse --log_level: %w", err)
		}
		values.LogLevel = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("cleanup-archive") {
		v, err := flags.GetBool("cleanup-archive")
		if err != nil {
			return values, fmt.Errorf("parse --cleanup-archive: %w", err)
		}
		values.CleanupArchive = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}

func requestFromFlags(cmd *cobra.Command) (runner.Request, error) {
	flags := cmd.Flags()

	workspace, err := flags.GetString("workspace")
	if err != nil {
		return runner.Request{}, fmt.Errorf("parse --workspace: %w", err)
	}
	workflowID, err := flags.GetString("workflow_id")
	if err != nil {
		return runner.Request{}, fmt.Errorf("parse --workflow_id: %w", err)
	}
	outputPath, err := flags.GetString("output")
	if err != nil {
		return runner.Request{}, fmt.Errorf("parse --output: %w", err)
	}

	return runner.Request{
		Workspace:  workspace,
		WorkflowID: workflowID,
		OutputPath: outputPath,
	}, nil
}
