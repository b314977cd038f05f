/*
Copyright 2026 Caixinha Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"os"

	"github.com/caixinha/caixinha"
	"github.com/caixinha/caixinha/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Caixinha represents the CLI application, encapsulating the root Cobra command.
type Caixinha struct {
	cmd *cobra.Command // Root command for the CLI application
}

// caixinhaInstance holds the ledger instance and its configuration, shared
// by every subcommand once the pre-run hook has executed.
type caixinhaInstance struct {
	ledger *caixinha.Caixinha
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec) // Log the recovered panic
		os.Exit(1)        // Exit the program with an error status
	}
}

// NewCLI creates the command-line interface (CLI) for the ledger server.
// It sets up the root command and its subcommands.
func NewCLI() *Caixinha {
	var configFile string
	b := &caixinhaInstance{}

	var rootCmd = &cobra.Command{
		Use:   "caixinha",
		Short: "In-memory overdraft ledger",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./caixinha.json", "Configuration file for the ledger server")

	// Load configuration and provision the ledger before any command runs.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(configFile); err != nil {
			return err
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		b.ledger = caixinha.NewCaixinha()
		b.cnf = cnf
		return nil
	}

	rootCmd.AddCommand(serverCommands(b))   // Command for starting the server
	rootCmd.AddCommand(clientesCommands(b)) // Command for inspecting the provisioning list

	return &Caixinha{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Caixinha) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
