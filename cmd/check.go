package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/topicmap/internal/assets"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the topic model assets without serving",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		paths := cfg.AssetPaths()

		fmt.Fprintf(out, "%s %s\n\n", brand.Sprint("topicmap"), subtle.Sprint("check "+cfg.DataDir))

		a, err := assets.Load(paths, cfg.AssetOptions())
		if err != nil {
			fmt.Fprintf(out, "  %s %v\n", statusIcon(false), err)
			return errors.New("assets are not valid")
		}
		fmt.Fprintf(out, "  %s assets load and cross-validate\n\n", statusIcon(true))

		s := a.Summary()
		printTable(out, []string{"ASSET", "ITEMS"}, [][]string{
			{"topics", strconv.Itoa(s.Topics)},
			{"palette colours", strconv.Itoa(s.Colors)},
			{"scatter nodes", strconv.Itoa(s.ScatterNodes)},
			{"network nodes", strconv.Itoa(s.NetworkNodes)},
			{"network edges", strconv.Itoa(s.NetworkEdges)},
			{"subjects", strconv.Itoa(s.Filters)},
		})

		unused, err := assets.Unused(cfg.DataDir, paths)
		if err != nil {
			return err
		}
		if len(unused) > 0 {
			fmt.Fprintln(out)
			warn.Fprintf(out, "  %d file(s) in %s are not used:\n", len(unused), cfg.DataDir)
			for _, f := range unused {
				fmt.Fprintf(out, "    %s\n", f)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
