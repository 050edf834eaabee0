package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/edusphere-backend/internal/service/decision"
	"github.com/heartmarshall/edusphere-backend/internal/transport/rest"
)

func newDecideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decide <score>",
		Short: "Classify an evaluation score",
		Long:  "Print the pedagogical decision for a score: advance from 80, consolidate from 50, change_modality below.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseFloat(args[0], 64)
			if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
				return fmt.Errorf("invalid score %q: must be a number", args[0])
			}
			return printJSON(cmd.OutOrStdout(), rest.ToDecisionResponse(score, decision.Decide(score)))
		},
	}
}
