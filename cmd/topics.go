package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/topicmap/internal/assets"
	"github.com/ziadkadry99/topicmap/internal/explorer"
)

var topicsTop int

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics with their leading tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := assets.Load(cfg.AssetPaths(), cfg.AssetOptions())
		if err != nil {
			return fmt.Errorf("loading assets: %w", err)
		}

		rows := make([][]string, 0, a.Topics.Len())
		for _, t := range explorer.New(a).Topics(topicsTop) {
			rows = append(rows, []string{
				strconv.Itoa(t.Index),
				t.Color,
				strconv.Itoa(t.Subjects),
				strings.Join(t.TopTokens, ", "),
			})
		}
		printTable(cmd.OutOrStdout(), []string{"TOPIC", "COLOUR", "SUBJECTS", "TOKENS"}, rows)
		return nil
	},
}

func init() {
	topicsCmd.Flags().IntVarP(&topicsTop, "top", "n", 10, "number of tokens to show per topic")
	rootCmd.AddCommand(topicsCmd)
}
