package cli

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/serenio-app/Serenio-Client/internal/domain"
)

func newChatCmd(app *App) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the Serenio support chatbot",
		Long:  "Send a single message with --message, or start an interactive session without flags. Type 'exit' to finish an interactive session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if message != "" {
				reply, err := app.Chat.Send(cmd.Context(), message)
				if err != nil {
					return friendlyError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s/%s] %s\n", reply.Sentiment, reply.Emotion, reply.BotReply)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Chat session %s started, type 'exit' to finish\n", app.Chat.SessionID())

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(cmd.OutOrStdout(), "> ")
				if !scanner.Scan() {
					break
				}

				text := strings.TrimSpace(scanner.Text())
				if text == "" {
					continue
				}
				if text == "exit" {
					break
				}

				reply, err := app.Chat.Send(cmd.Context(), text)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "error: %v\n", friendlyError(err))
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "[%s/%s] %s\n", reply.Sentiment, reply.Emotion, reply.BotReply)
			}

			app.Chat.EndSession()
			fmt.Fprintln(cmd.OutOrStdout(), "Session ended")
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "send a single message instead of an interactive session")

	return cmd
}

func newChatSessionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat-sessions",
		Short: "List your saved chat sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Chat.Sessions(cmd.Context())
			if err != nil {
				return friendlyError(err)
			}

			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved chat sessions")
				return nil
			}

			for _, id := range sessions {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func newChatReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat-report <session-id>",
		Short: "Show a sentiment report for a saved chat session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Chat.SessionReport(cmd.Context(), args[0])
			if err != nil {
				return friendlyError(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session %s: %d messages, dominant tone %s\n",
				report.SessionID, report.TotalMessages, report.DominantSentiment())

			fmt.Fprintln(out, "\nSentiment:")
			for _, s := range []domain.Sentiment{domain.SentimentPositive, domain.SentimentNeutral, domain.SentimentNegative} {
				fmt.Fprintf(out, "  %-8s %3d (%.1f%%)\n", s, report.SentimentCounts[s], report.SentimentPercents[s])
			}

			if len(report.EmotionCounts) > 0 {
				fmt.Fprintln(out, "\nEmotions:")
				for emotion, count := range report.EmotionCounts {
					fmt.Fprintf(out, "  %-8s %3d\n", emotion, count)
				}
			}

			if len(report.TopicCounts) > 0 {
				fmt.Fprintln(out, "\nTopics:")
				topics := make([]string, 0, len(report.TopicCounts))
				for topic := range report.TopicCounts {
					topics = append(topics, topic)
				}
				sort.Strings(topics)
				for _, topic := range topics {
					fmt.Fprintf(out, "  %-16s %3d\n", topic, report.TopicCounts[topic])
				}
			}

			return nil
		},
	}
}
