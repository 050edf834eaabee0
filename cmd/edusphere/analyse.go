package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/edusphere-backend/internal/service/analysis"
	"github.com/heartmarshall/edusphere-backend/internal/transport/rest"
)

func newAnalyseCmd(opts *rootOptions) *cobra.Command {
	var (
		language string
		student  string
	)

	cmd := &cobra.Command{
		Use:     "analyse <text>...",
		Aliases: []string{"analyze", "analyser"},
		Short:   "Check a text against the rule store",
		Long:    "Print the corrections and suggested exercises for a text as JSON. Arguments are joined with spaces. --language \"\" disables language filtering.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			input := analysis.AnalyzeInput{
				Text:      strings.Join(args, " "),
				StudentID: student,
			}
			if cmd.Flags().Changed("language") {
				input.Language = &language
			}

			result := a.AnalysisService.Analyze(cmd.Context(), input)
			return printJSON(cmd.OutOrStdout(), rest.ToAnalysisResponse(result))
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language of the rules to apply (default fr)")
	cmd.Flags().StringVarP(&student, "student", "s", "", "Student identifier (default anonymous)")

	return cmd
}
