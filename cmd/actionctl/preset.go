package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/actionkit/pkg/config"
	"github.com/gonewx/actionkit/pkg/game"
)

const defaultAppName = "actionkit"

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("app", defaultAppName, "Application name used for the preset storage location")
}

func openStore(cmd *cobra.Command) (*game.PresetStore, error) {
	app, _ := cmd.Flags().GetString("app")
	store, err := game.OpenPresetStore(app)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset store: %w", err)
	}
	return store, nil
}

// PresetCommand 返回 "preset" 父命令
func PresetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage stored action presets",
		Long: "Store named action scripts in the per-user data directory so they can\n" +
			"be simulated without the original library file.",
	}

	cmd.AddCommand(presetSaveCommand())
	cmd.AddCommand(presetListCommand())
	cmd.AddCommand(presetShowCommand())
	cmd.AddCommand(presetDeleteCommand())

	return cmd
}

func presetSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Save a script from a library file as a preset",
		Long: "Save a script from a library file as a preset.\n\n" +
			"Examples:\n" +
			"  actionctl preset save scripts.yaml --script shake\n" +
			"  actionctl preset save scripts.yaml --script shake --as small_shake",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptName, _ := cmd.Flags().GetString("script")
			as, _ := cmd.Flags().GetString("as")
			if scriptName == "" {
				return fmt.Errorf("--script is required")
			}
			if as == "" {
				as = scriptName
			}

			lib, err := config.LoadActionLibrary(args[0])
			if err != nil {
				return err
			}
			script, ok := lib.Script(scriptName)
			if !ok {
				return fmt.Errorf("script %q not found in %s", scriptName, args[0])
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.Save(as, script.Action); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q\n", as)
			return nil
		},
	}

	cmd.Flags().String("script", "", "Script name inside the library file")
	cmd.Flags().String("as", "", "Preset name (defaults to the script name)")
	addStoreFlags(cmd)

	return cmd
}

func presetListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List stored presets",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			names := store.List()
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No presets stored.")
				return nil
			}
			fmt.Fprintln(out, styled(cmd, headerStyle, fmt.Sprintf("Presets (%d):", len(names))))
			for _, name := range names {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	addStoreFlags(cmd)

	return cmd
}

func presetShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "show <name>",
		Short:        "Print a stored preset as YAML",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			spec, err := store.Load(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(spec); err != nil {
				return fmt.Errorf("failed to encode preset: %w", err)
			}
			return enc.Close()
		},
	}

	addStoreFlags(cmd)

	return cmd
}

func presetDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <name>",
		Short:        "Delete a stored preset",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", args[0])
			return nil
		},
	}

	addStoreFlags(cmd)

	return cmd
}
