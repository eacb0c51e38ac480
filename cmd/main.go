/*
Copyright 2024 Blnk Finance Authors.

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
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jerry-enebeli/nexabank"
	"github.com/jerry-enebeli/nexabank/config"
	"github.com/jerry-enebeli/nexabank/database"
	"github.com/jerry-enebeli/nexabank/internal/notification"
)

// NexabankCLI encapsulates the root Cobra command.
type NexabankCLI struct {
	cmd *cobra.Command
}

// serviceInstance holds the running service and its configuration, shared
// across subcommands.
type serviceInstance struct {
	service *nexabank.Nexabank
	cnf     *config.Configuration
}

func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the service before any
// subcommand runs.
func preRun(app *serviceInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig("nexabank.json")
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		service, err := setupService(cnf)
		if err != nil {
			notification.NotifyError(err)
			log.Fatal(err)
		}

		app.service = service
		app.cnf = cnf
		return nil
	}
}

// setupService connects the datasource and builds the banking service.
func setupService(cnf *config.Configuration) (*nexabank.Nexabank, error) {
	db, err := database.NewDataSource(cnf)
	if err != nil {
		return nil, fmt.Errorf("error getting datasource: %v", err)
	}
	service, err := nexabank.NewNexabank(db)
	if err != nil {
		return nil, fmt.Errorf("error creating service: %v", err)
	}
	return service, nil
}

// NewCLI assembles the root command and registers the subcommands.
func NewCLI() *NexabankCLI {
	var app serviceInstance

	var rootCmd = &cobra.Command{
		Use:   "nexabank",
		Short: "NexaBank digital banking service",
	}
	rootCmd.PersistentPreRunE = preRun(&app)

	rootCmd.AddCommand(serverCommands(&app))
	rootCmd.AddCommand(migrateCommands(&app))

	return &NexabankCLI{cmd: rootCmd}
}

func (w NexabankCLI) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()
	cli := NewCLI()
	cli.executeCLI()
}
