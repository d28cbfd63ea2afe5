package main

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oneflow1982/ktg/pkg/config"
)

func NewPresetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "preset [name]",
		Short:   "Apply a named parameter preset",
		GroupID: gAdvanced,
		Long: `Apply a named parameter preset to the stored configuration.

Without an argument, list the available presets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := make([]string, 0, len(config.Presets))
				for name := range config.Presets {
					names = append(names, name)
				}
				sort.Strings(names)

				cmd.Println(bold("Available presets:"))
				for _, name := range names {
					p := config.Presets[name]
					cmd.Printf("  %-12s baseline %.2f, system time %.1f h\n", name, p.Baseline, p.SystemTime)
				}
				return nil
			}

			conf, err := config.NewFile(configPath)
			if err != nil {
				return err
			}

			if err := config.ApplyPreset(conf, args[0]); err != nil {
				return err
			}

			logrus.Infof("applied preset %q: baseline %g, system time %g h", args[0], conf.Baseline(), conf.SystemTime())
			return nil
		},
	}
}
