package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serenio-app/Serenio-Client/internal/domain"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Serenio",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (role: %s)\n", email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newSignupCmd(app *App) *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a Serenio account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != domain.RoleUser && role != domain.RolePsychologist {
				return fmt.Errorf("unknown role %q, expected %s or %s", role, domain.RoleUser, domain.RolePsychologist)
			}

			sess, err := app.Session.Register(cmd.Context(), name, email, password, role)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account created, logged in as %s (role: %s)\n", email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&role, "role", domain.RoleUser, "account role")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := app.Session.Current()
			if sess == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User ID: %s\n", sess.UserID)
			fmt.Fprintf(cmd.OutOrStdout(), "Role:    %s\n", sess.Role)
			if !sess.ExpiresAt.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "Expires: %s\n", sess.ExpiresAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
