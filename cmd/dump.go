package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/controlj/regexc/compiler"
	"github.com/controlj/regexc/lexer"
	"github.com/controlj/regexc/parser"
	"github.com/controlj/regexc/rulefile"
)

var showTokens bool

func init() {
	dumpCmd.Flags().BoolVar(&showTokens, "tokens", false, "Dump pattern tokens and syntax tree")
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <rule-file>",
	Short: "Compile a rule file and dump the DFA and actions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if showTokens {
			if err := dumpTokens(path); err != nil {
				return err
			}
		}

		res, err := compiler.CompileFile(path)
		if err != nil {
			return err
		}

		fmt.Println(res.DFA)
		repr.Println(res.Actions.All())

		return nil
	},
}

func dumpTokens(path string) error {
	file, err := rulefile.ParseFile(path)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(compiler.Compose(file.Rules))
	if err != nil {
		return err
	}
	PrintTokens(tokens)
	fmt.Println()

	node, err := parser.Parse(compiler.Compose(file.Rules), file.Names)
	if err != nil {
		return err
	}
	repr.Println(node)
	fmt.Println()

	return nil
}

func PrintTokens(tokens []lexer.Token) {
	for _, t := range tokens {
		fmt.Println(t.StringAlign())
	}
}
