package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gonewx/actionkit/pkg/config"
)

// ValidateCommand 返回 "validate" 命令
func ValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that every script in the given library files builds",
		Long: "Load each library file and build every script in it. Callback names\n" +
			"used by call actions do not need to be registered.\n\n" +
			"Examples:\n" +
			"  actionctl validate data/actions/*.yaml",
		Args:         cobra.MinimumNArgs(1),
		RunE:         runValidate,
		SilenceUsage: true,
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		lib, err := config.LoadActionLibrary(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %v\n", styled(cmd, failStyle, "FAIL"), err)
			continue
		}
		for _, name := range lib.Names() {
			fmt.Fprintf(out, "%s   %s: %s\n", styled(cmd, okStyle, "OK"), path, name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
	}
	return nil
}
