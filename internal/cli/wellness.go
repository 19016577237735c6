package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newMoodCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mood <Positive|Neutral|Negative>",
		Short: "Log how you feel today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Insights.LogMood(cmd.Context(), args[0]); err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Mood %s logged\n", args[0])
			return nil
		},
	}
}

func newReportsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Show your wellness reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := app.Insights.Reports(cmd.Context())
			if err != nil {
				return friendlyError(err)
			}

			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reports yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tSESSION\tSENTIMENT\tRECOMMENDATION")
			for _, r := range reports {
				date := ""
				if !r.CreatedAt.IsZero() {
					date = r.CreatedAt.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", date, r.SessionID, r.Sentiment, r.Recommendation)
			}
			return w.Flush()
		},
	}
}
