package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage dashboard administrators",
	}
	cmd.AddCommand(newAdminCreateCmd())
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var req reqdto.CreateAdminRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator",
		Long:  "Create an administrator. The password is read from stdin when --password is omitted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				pw, err := readPassword(cmd.InOrStdin())
				if err != nil {
					return err
				}
				req.Password = pw
			}

			var admins commands.AdminCommands
			return runApp(cmd.Context(), []fx.Option{fx.Populate(&admins)}, func(ctx context.Context) error {
				id, err := admins.Create(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", req.Email, id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (prefer stdin)")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errors.New("password is required")
	}
	return pw, nil
}
