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

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/jerry-enebeli/nexabank"
	"github.com/jerry-enebeli/nexabank/config"
	"github.com/jerry-enebeli/nexabank/database"
)

func migrateCommands(_ *serviceInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "start nexabank migration",
	}

	cmd.AddCommand(migrateUpCommands())
	cmd.AddCommand(migrateDownCommands())

	return cmd
}

func migrationSource() migrate.EmbedFileSystemMigrationSource {
	return migrate.EmbedFileSystemMigrationSource{
		FileSystem: nexabank.SQLFiles,
		Root:       "sql",
	}
}

func migrateUpCommands() *cobra.Command {
	cmd := &cobra.Command{
		Use: "up",
		Run: func(cmd *cobra.Command, args []string) {
			cnf, err := config.Fetch()
			if err != nil {
				log.Fatalf("Error fetching config: %v", err)
			}
			db, err := database.ConnectDB(cnf.DataSource.Dns)
			if err != nil {
				log.Fatalf("Error connecting to database: %v", err)
			}
			n, err := migrate.Exec(db, "postgres", migrationSource(), migrate.Up)
			if err != nil {
				log.Fatalf("Error migrating up: %v", err)
			}
			fmt.Printf("Applied %d migrations!\n", n)
		},
	}
	return cmd
}

func migrateDownCommands() *cobra.Command {
	cmd := &cobra.Command{
		Use: "down",
		Run: func(cmd *cobra.Command, args []string) {
			cnf, err := config.Fetch()
			if err != nil {
				log.Fatalf("Error fetching config: %v", err)
			}
			db, err := database.ConnectDB(cnf.DataSource.Dns)
			if err != nil {
				log.Fatalf("Error connecting to database: %v", err)
			}
			n, err := migrate.Exec(db, "postgres", migrationSource(), migrate.Down)
			if err != nil {
				log.Fatalf("Error migrating down: %v", err)
			}
			fmt.Printf("Rolled back %d migrations!\n", n)
		},
	}
	return cmd
}
