package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/healthone/clinic-api/pkg/client"
)

// Config is read from CLINICCTL_* environment variables.
type Config struct {
	APIURL      string        `envconfig:"API_URL" default:"http://localhost:5000"`
	SessionFile string        `envconfig:"SESSION_FILE"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"15s"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("clinicctl", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(dir, "healthone", "session.json")
	}
	return &cfg, nil
}

func newClient() (*client.Client, *Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	session, err := client.LoadSession(cfg.SessionFile)
	if err != nil {
		return nil, nil, err
	}
	return client.New(cfg.APIURL, session), cfg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "clinicctl",
		Short:        "Sign in to the Health-One API from the command line",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			role, _ := cmd.Flags().GetString("role")
			password, _ := cmd.Flags().GetString("password")

			c, cfg, err := newClient()
			if err != nil {
				return err
			}
			if redirect := c.Session().Guard(client.RouteLogin); redirect != "" {
				return errors.New("already signed in; run logout first")
			}

			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			user, err := c.Login(ctx, email, password, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s). Dashboard: %s\n",
				user.Email, describe(user), client.Destination(user))
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("role", "", "Account role: patient, clinic or admin")
	cmd.Flags().String("password", "", "Password; prompted when omitted")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the token and clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			if err := c.Logout(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: server logout failed: %v\n", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient()
			if err != nil {
				return err
			}
			if redirect := c.Session().Guard(client.RouteHome); redirect != "" {
				return client.ErrNotSignedIn
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			user, err := c.Me(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.Email, describe(user))
			return nil
		},
	}
}

func describe(u *client.User) string {
	if u.UserType != "" {
		return u.Role + "/" + u.UserType
	}
	return u.Role
}
