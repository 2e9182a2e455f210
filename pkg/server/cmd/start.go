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
	"net/http"

	"github.com/airavoto/gamingpos/pkg/server/buildinfo"
	"github.com/airavoto/gamingpos/pkg/server/config"
	"github.com/airavoto/gamingpos/pkg/server/controllers"
	"github.com/airavoto/gamingpos/pkg/server/log"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	var (
		port                string
		dbMode              string
		dbPath              string
		databaseURL         string
		logLevel            string
		disableRegistration bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(config.Params{
				Port:                port,
				DBMode:              dbMode,
				DBPath:              dbPath,
				DatabaseURL:         databaseURL,
				LogLevel:            logLevel,
				DisableRegistration: disableRegistration,
			})
			if err != nil {
				return err
			}

			log.SetLevel(cfg.LogLevel)

			a, cleanup := initApp(cfg)
			defer cleanup()

			if err := seedDefaults(a); err != nil {
				return errors.Wrap(err, "seeding defaults")
			}

			scheduler := session.StartPruning(a.Sessions)
			defer scheduler.Stop()

			ctl := controllers.New(a)
			rc := controllers.RouteConfig{
				Controllers: ctl,
				APIRoutes:   controllers.NewAPIRoutes(a, ctl),
			}

			r, err := controllers.NewRouter(a, rc)
			if err != nil {
				return errors.Wrap(err, "initializing router")
			}

			log.WithFields(log.Fields{
				"version": buildinfo.Version,
				"port":    cfg.Port,
			}).Info("gamingpos server starting")

			return http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Server port (env: PORT, default: 5000)")
	cmd.Flags().StringVar(&dbMode, "dbMode", "", "Database backend: sqlite or postgres (env: DB_MODE, default: sqlite)")
	cmd.Flags().StringVar(&dbPath, "dbPath", "", "Path to SQLite database file (env: DB_PATH, default: data/gamingpos.db)")
	cmd.Flags().StringVar(&databaseURL, "databaseUrl", "", "Postgres connection URL (env: DATABASE_URL)")
	cmd.Flags().StringVar(&logLevel, "logLevel", "", "Log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")
	cmd.Flags().BoolVar(&disableRegistration, "disableRegistration", false, "Disable user registration (env: DISABLE_REGISTRATION, default: false)")

	return cmd
}
