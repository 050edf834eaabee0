package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/edusphere-backend/internal/transport/rest"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules of the knowledge base",
		Long:  "Print the seed rules as JSON, in insertion order. --language keeps only rules with exactly that language.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			rules := a.RuleService.ListRules(cmd.Context(), language)
			return printJSON(cmd.OutOrStdout(), rest.ToRuleResponses(rules))
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Only list rules in this language")

	return cmd
}
