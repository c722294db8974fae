package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/threadexio/hid-tester/parser"
	"github.com/threadexio/hid-tester/table"
)

// keysFile is read from the working directory.
var keysFile = "keys.txt"

var level string

func init() {
	rootCmd.PersistentFlags().StringVar(&level, "log", "info", "Log level")
}

var rootCmd = &cobra.Command{
	Use:           "mkkeys",
	SilenceErrors: true,
	SilenceUsage:  true,
	Short:         "Generate the key code table from " + keysFile,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l, err := log.ParseLevel(level)
		if err != nil {
			l = log.InfoLevel
		}

		log.SetLevel(l)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := build()
		if err != nil {
			return err
		}

		log.Debugf("%v entries", len(t.Entries))

		_, err = t.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func build() (*table.Table, error) {
	file, err := parser.ParseFile(keysFile)
	if err != nil {
		return nil, err
	}

	return table.Build(file)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
