// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/harbor-admin/internal/service"
	"github.com/MKhiriev/harbor-admin/models"
	"github.com/spf13/cobra"
)

func newListCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List user accounts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, buildInfo)
			if err != nil {
				return err
			}
			defer app.Close()

			accounts, err := app.Accounts().List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(models.AccountsResponse{Users: accounts})
			}

			formatter := app.Formatter()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "USERNAME\tCREATED\tMODIFIED")
			for _, account := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					account.Username,
					formatter.Format(account.CreatedAt),
					formatter.Format(account.ModifiedAt),
				)
			}
			return w.Flush()
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the raw account list as JSON")
	return c
}

func newCreateCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	var passwordStdin bool

	c := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, buildInfo)
			if err != nil {
				return err
			}
			defer app.Close()

			p := newPrompter(cmd, passwordStdin)
			form := models.AccountForm{Username: args[0]}
			if form.Passphrase, err = p.secret("Pass phrase"); err != nil {
				return err
			}
			if form.PassphraseConfirmation, err = p.secret("Confirm pass phrase"); err != nil {
				return err
			}

			if err = app.Accounts().Create(cmd.Context(), form); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created\n", form.Username)
			return nil
		},
	}
	c.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the pass phrase and its confirmation as two lines from stdin")
	return c
}

func newPasswdCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	var passwordStdin bool

	c := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Change the pass phrase of a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, buildInfo)
			if err != nil {
				return err
			}
			defer app.Close()

			p := newPrompter(cmd, passwordStdin)
			change := models.PassphraseChange{Username: args[0]}
			if change.Passphrase, err = p.secret(fmt.Sprintf("Please enter a new pass phrase for %s", change.Username)); err != nil {
				return err
			}
			if change.Passphrase != "" {
				if change.Confirmation, err = p.secret(fmt.Sprintf("Please confirm %s's new pass phrase", change.Username)); err != nil {
					return err
				}
			}

			err = app.Accounts().ChangePassphrase(cmd.Context(), change)
			if service.IsAborted(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), service.TextPassphraseUpdated)
			return nil
		},
	}
	c.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the pass phrase and its confirmation as two lines from stdin")
	return c
}

func newDeleteCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	var yes bool

	c := &cobra.Command{
		Use:     "delete <username>",
		Aliases: []string{"rm"},
		Short:   "Remove a user account and all related data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, buildInfo)
			if err != nil {
				return err
			}
			defer app.Close()

			username := args[0]
			confirmed := yes
			if !confirmed {
				answer, err := newPrompter(cmd, false).line(
					fmt.Sprintf("Really remove %s's account? All related data will be removed too. [y/N]", username))
				if err != nil {
					return err
				}
				answer = strings.ToLower(strings.TrimSpace(answer))
				confirmed = answer == "y" || answer == "yes"
			}

			err = app.Accounts().Delete(cmd.Context(), username, confirmed)
			if service.IsAborted(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %s removed\n", username)
			return nil
		},
	}
	c.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return c
}
