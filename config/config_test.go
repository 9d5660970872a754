package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config", false) {
		assert.Fail(t, "zero-value field", field)
	}
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string, nullable bool) (fields []string) {
	if a.Type.Kind() == reflect.Struct {
		for field := 0; field < a.Value.NumField(); field++ {
			v1 := variable{a.Type.Field(field).Type, a.Value.Field(field)}
			fieldname := a.Type.Field(field).Name
			isNullable := a.Type.Field(field).Tag.Get("test") == "nullable"
			fields = append(fields, visit(v1, name+"."+fieldname, isNullable)...)
		}

		return fields
	}

	if a.Value.IsZero() && !nullable {
		return []string{name}
	}

	return nil
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Default()
		require.Equal(t, 1024, cfg.NET.ReadBufferSize)
		require.NoError(t, cfg.Validate())
		level, err := cfg.LogLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.InfoLevel, level)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := Load(strings.NewReader("{}"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("overlay", func(t *testing.T) {
		cfg, err := Load(strings.NewReader(`{"net": {"read_buffer_size": 4096}}`))
		require.NoError(t, err)
		require.Equal(t, 4096, cfg.NET.ReadBufferSize)
		require.Equal(t, Default().Log, cfg.Log)
	})

	t.Run("log level", func(t *testing.T) {
		cfg, err := Load(strings.NewReader(`{"log": {"level": "debug"}}`))
		require.NoError(t, err)
		level, err := cfg.LogLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{"net": `))
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode config")
	})

	t.Run("non-positive buffer", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{"net": {"read_buffer_size": 0}}`))
		require.EqualError(t, err, "net.read_buffer_size must be positive, got 0")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{"log": {"level": "loud"}}`))
		require.Error(t, err)
		require.Contains(t, err.Error(), "log.level")
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nimble.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"net": {"read_buffer_size": 2048}}`), 0o600))
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, 2048, cfg.NET.ReadBufferSize)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nimble.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"net": {"read_buffer_size": -1}}`), 0o600))
		_, err := LoadFile(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "load "+path)
	})
}
