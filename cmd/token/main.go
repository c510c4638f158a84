// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command token mints and inspects access tokens for local development.
//
//	token mint --user u-1 --role admin --private-key keys/private.pem --public-key keys/public.pem
//	token verify --public-key keys/public.pem <token>
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/authordesk/internal/platform/constants"
	"github.com/taibuivan/authordesk/internal/platform/sec"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		publicKeyPath string
		issuer        string
	)

	cmd := &cobra.Command{
		Use:          "token",
		Short:        "Mint and verify development access tokens",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&publicKeyPath, "public-key", os.Getenv("JWT_PUBLIC_KEY_PATH"), "RSA public key (PEM)")
	cmd.PersistentFlags().StringVar(&issuer, "issuer", envOr("JWT_ISSUER", "authordesk"), "Token issuer")

	cmd.AddCommand(mintCmd(&publicKeyPath, &issuer), verifyCmd(&publicKeyPath, &issuer))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s token %s\n", constants.AppName, constants.AppVersion)
		},
	})

	return cmd
}

func mintCmd(publicKeyPath, issuer *string) *cobra.Command {
	var (
		privateKeyPath string
		userID         string
		username       string
		role           string
		ttl            time.Duration
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Sign a new access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sec.UserRole(role).Valid() {
				return fmt.Errorf("unknown role %q", role)
			}

			tokens, err := sec.NewTokenService(privateKeyPath, *publicKeyPath, *issuer)
			if err != nil {
				return err
			}

			if username == "" {
				username = userID
			}
			token, err := tokens.GenerateAccessToken(userID, username, sec.UserRole(role), ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&privateKeyPath, "private-key", os.Getenv("JWT_PRIVATE_KEY_PATH"), "RSA private key (PEM)")
	cmd.Flags().StringVar(&userID, "user", "", "User id carried by the token")
	cmd.Flags().StringVar(&username, "username", "", "Display name (defaults to --user)")
	cmd.Flags().StringVar(&role, "role", string(sec.RoleUser), "Role: user or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func verifyCmd(publicKeyPath, issuer *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Check a token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := sec.NewTokenService("", *publicKeyPath, *issuer)
			if err != nil {
				return err
			}

			claims, err := tokens.VerifyToken(args[0])
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(claims)
		},
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
