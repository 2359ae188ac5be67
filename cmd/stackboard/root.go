// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the Stackboard CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stackboard",
		Short: "Stackboard - a multi-user task board service",
		Long: `Stackboard is a task board service: boards hold lists, lists hold
cards, and every resource belongs to exactly one user. The HTTP API
authenticates with bearer tokens and authorizes by ownership.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}
