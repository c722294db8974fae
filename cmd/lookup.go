package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>...",
	Short: "Print the code assigned to each key name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := build()
		if err != nil {
			return err
		}

		for _, name := range args {
			code, ok := t.Lookup(name)
			if !ok {
				return errors.Errorf("unknown key `%v`", name)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v %v\n", name, code)
		}

		return nil
	},
}
