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
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/caixinha/caixinha"
)

// clientesCommands returns the Cobra command that prints the fixed
// provisioning list the server boots with.
func clientesCommands(_ *caixinhaInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clientes",
		Short: "list provisioned client accounts",
		Run: func(cmd *cobra.Command, args []string) {
			payload, err := json.MarshalIndent(caixinha.DefaultAccounts(), "", "  ")
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(payload))
		},
	}

	return cmd
}
