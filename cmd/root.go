/*
 * Clock node
 * Copyright (C) 2026 Clock community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/clock-app/clock-node/alarm"
	alarmAPI "github.com/clock-app/clock-node/alarm/api/v1"
	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/http"
	"github.com/clock-app/clock-node/settings"
	settingsAPI "github.com/clock-app/clock-node/settings/api/v1"
	"github.com/clock-app/clock-node/stopwatch"
	stopwatchAPI "github.com/clock-app/clock-node/stopwatch/api/v1"
	"github.com/clock-app/clock-node/storage"
	"github.com/clock-app/clock-node/timezone"
	timezoneAPI "github.com/clock-app/clock-node/timezone/api/v1"
)

var stdOutWriter io.Writer = os.Stdout

func createRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Clock node which serves alarms, stopwatch laps, world timezones and user preferences.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}
}

func createPrintConfigCommand(system *core.System) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := system.Load(cmd.Flags()); err != nil {
				return err
			}
			cmd.Println("Current system config")
			cmd.Println(system.Config.PrintConfig())
			return nil
		},
	}
	addFlagSets(cmd)
	return cmd
}

func createServerCommand(system *core.System) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the clock server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := system.Load(cmd.Flags()); err != nil {
				return err
			}
			return startServer(cmd.Context(), system)
		},
	}
	addFlagSets(cmd)
	return cmd
}

func startServer(ctx context.Context, system *core.System) error {
	logrus.Info("Starting server with config:")
	logrus.Info(system.Config.PrintConfig())

	if err := system.Configure(); err != nil {
		return err
	}

	// connect the API handlers to the echo server before any engine starts
	httpEngine := resolveHTTPEngine(system)
	for _, router := range system.Routers {
		router.Routes(httpEngine.Router())
	}

	if err := system.Start(); err != nil {
		return err
	}
	defer func() {
		if err := system.Shutdown(); err != nil {
			logrus.
				WithError(err).
				Error("Error shutting down the system")
		}
	}()

	// wait for a signal or an unexpected HTTP server stop
	<-ctx.Done()
	logrus.Info("Shutting down...")
	return nil
}

func resolveHTTPEngine(system *core.System) *http.Engine {
	var result *http.Engine
	system.VisitEngines(func(engine core.Engine) {
		if m, ok := engine.(*http.Engine); ok {
			result = m
		}
	})
	return result
}

// CreateCommand creates the root command with all subcommands to run the system.
func CreateCommand(system *core.System) *cobra.Command {
	command := createRootCommand()
	command.SetOut(stdOutWriter)
	command.AddCommand(createServerCommand(system))
	command.AddCommand(createPrintConfigCommand(system))
	return command
}

// CreateSystem creates the system and registers all engines. The shutdown callback is
// called when the HTTP server stops unexpectedly.
func CreateSystem(shutdownCallback context.CancelFunc) *core.System {
	system := core.NewSystem()

	// Create instances
	storageInstance := storage.New()
	alarmInstance := alarm.New(storageInstance)
	stopwatchInstance := stopwatch.New(storageInstance)
	timezoneInstance := timezone.New(storageInstance)
	settingsInstance := settings.New(storageInstance)
	httpInstance := http.New(func() {
		shutdownCallback()
	})

	// Register engines, the registration order is the startup order.
	// The HTTP engine is registered last so it only serves requests once every other engine started.
	system.RegisterEngine(core.NewStatusEngine(system))
	system.RegisterEngine(core.NewMetricsEngine())
	system.RegisterEngine(storageInstance)
	system.RegisterEngine(alarmInstance)
	system.RegisterEngine(stopwatchInstance)
	system.RegisterEngine(timezoneInstance)
	system.RegisterEngine(settingsInstance)
	system.RegisterEngine(httpInstance)

	// Register routes
	system.RegisterRoutes(&alarmAPI.Wrapper{Service: alarmInstance})
	system.RegisterRoutes(&stopwatchAPI.Wrapper{Service: stopwatchInstance})
	system.RegisterRoutes(&timezoneAPI.Wrapper{Service: timezoneInstance})
	system.RegisterRoutes(&settingsAPI.Wrapper{Service: settingsInstance})
	system.VisitEngines(func(engine core.Engine) {
		if m, ok := engine.(core.Routable); ok {
			system.RegisterRoutes(m)
		}
	})

	return system
}

// Execute executes the root command with the given system.
func Execute(ctx context.Context, system *core.System) error {
	command := CreateCommand(system)
	command.SetOut(stdOutWriter)
	return command.ExecuteContext(ctx)
}

func addFlagSets(cmd *cobra.Command) {
	for _, flagSet := range []*pflag.FlagSet{core.FlagSet(), storage.FlagSet(), timezone.FlagSet()} {
		cmd.Flags().AddFlagSet(flagSet)
	}
}
