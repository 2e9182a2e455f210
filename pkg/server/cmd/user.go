/* Copyright 2025 Airavoto Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"

	"github.com/airavoto/gamingpos/pkg/server/config"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(newUserCreateCmd())

	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var (
		username    string
		password    string
		email       string
		role        string
		dbMode      string
		dbPath      string
		databaseURL string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(config.Params{
				DBMode:      dbMode,
				DBPath:      dbPath,
				DatabaseURL: databaseURL,
			})
			if err != nil {
				return err
			}

			a, cleanup := initApp(cfg)
			defer cleanup()

			user, err := a.CreateUser(username, password, email, role)
			if err != nil {
				return err
			}

			fmt.Printf("User created successfully\n")
			fmt.Printf("Username: %s\n", user.Username)
			fmt.Printf("Role: %s\n", user.Role)

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password, at least 8 characters (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&role, "role", database.RoleStaff, "Role: admin or staff")
	cmd.Flags().StringVar(&dbMode, "dbMode", "", "Database backend: sqlite or postgres (env: DB_MODE, default: sqlite)")
	cmd.Flags().StringVar(&dbPath, "dbPath", "", "Path to SQLite database file (env: DB_PATH, default: data/gamingpos.db)")
	cmd.Flags().StringVar(&databaseURL, "databaseUrl", "", "Postgres connection URL (env: DATABASE_URL)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}
