package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/topicmap/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize topicmap configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks where the topic model assets live and writes a .topicmap.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
