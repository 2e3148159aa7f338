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

package core

import (
	"errors"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	name           string
	configureError error
	configured     bool
	started        bool
	shutdown       bool
	config         struct {
		Key string `koanf:"key"`
	}
}

func (t *testEngine) Name() string {
	return t.name
}

func (t *testEngine) Config() interface{} {
	return &t.config
}

func (t *testEngine) Configure(_ ServerConfig) error {
	t.configured = true
	return t.configureError
}

func (t *testEngine) Start() error {
	t.started = true
	return nil
}

func (t *testEngine) Shutdown() error {
	t.shutdown = true
	return nil
}

func TestSystem_Configure(t *testing.T) {
	t.Run("configures all engines and creates the datadir", func(t *testing.T) {
		system := NewSystem()
		system.Config.Datadir = path.Join(t.TempDir(), "data")
		engine := &testEngine{name: "Test"}
		system.RegisterEngine(engine)

		require.NoError(t, system.Configure())

		assert.True(t, engine.configured)
		_, err := os.Stat(system.Config.Datadir)
		assert.NoError(t, err)
	})
	t.Run("stops at the first failing engine", func(t *testing.T) {
		system := NewSystem()
		system.Config.Datadir = t.TempDir()
		failing := &testEngine{name: "Failing", configureError: errors.New("nope")}
		last := &testEngine{name: "Last"}
		system.RegisterEngine(failing)
		system.RegisterEngine(last)

		assert.EqualError(t, system.Configure(), "nope")
		assert.False(t, last.configured)
	})
}

func TestSystem_Lifecycle(t *testing.T) {
	system := NewSystem()
	engine := &testEngine{name: "Test"}
	system.RegisterEngine(engine)

	require.NoError(t, system.Start())
	require.NoError(t, system.Shutdown())

	assert.True(t, engine.started)
	assert.True(t, engine.shutdown)
}

func TestSystem_Load(t *testing.T) {
	system := NewSystem()
	engine := &testEngine{name: "Test"}
	system.RegisterEngine(engine)
	t.Setenv("CLOCK_TEST_KEY", "value")

	require.NoError(t, system.Load(FlagSet()))

	assert.Equal(t, "value", engine.config.Key)
}

func TestSystem_Diagnostics(t *testing.T) {
	system := NewSystem()
	system.RegisterEngine(&testEngine{name: "Test"})
	system.RegisterEngine(NewStatusEngine(system))

	results := system.Diagnostics()

	// only the status engine is diagnosable
	require.Len(t, results, 2)
	assert.Equal(t, "registered_engines", results[0].Name())
}
