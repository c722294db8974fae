package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/threadexio/hid-tester/lexer"
	"github.com/threadexio/hid-tester/parser"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump tokens and syntax tree of " + keysFile,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(keysFile)
		if err != nil {
			return errors.Wrap(err, "open key list")
		}
		defer f.Close()

		return dump(cmd.OutOrStdout(), f)
	},
}

func dump(w io.Writer, r io.Reader) error {
	tokens, err := lexer.Tokenize(r)
	if err != nil {
		return err
	}

	PrintTokens(w, tokens)
	fmt.Fprintln(w)

	node, err := parser.ParseTokens(tokens)
	repr.New(w).Println(node)
	fmt.Fprintln(w)

	return err
}

func PrintTokens(w io.Writer, tokens []lexer.Token) {
	for _, t := range tokens {
		fmt.Fprintln(w, t.StringAlign())
	}
}
