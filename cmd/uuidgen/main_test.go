package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/rfcuuid"
)

func runCLI(t *testing.T, args ...string) ([]string, *logtest.Hook, error) {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	err := run(args, &out, log)
	return strings.Fields(out.String()), hook, err
}

func TestGen_Default(t *testing.T) {
	lines, _, err := runCLI(t)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	uuid, err := rfcuuid.Parse(lines[0])
	require.NoError(t, err)
	assert.Equal(t, rfcuuid.VersionRandom, uuid.Version())
	assert.Len(t, lines[0], 36)
}

func TestGen_NameBased(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "v5 url braces",
			args: []string{"--version", "5", "--namespace", "url", "--name", "https://www.contoso.com", "--format", "B"},
			want: []string{"{1bf6935b-49e6-54cf-a9c8-51fb21c41b46}"},
		},
		{
			name: "v3 dns repeated",
			args: []string{"-v", "3", "--name", "www.google.com", "-n", "2"},
			want: []string{"de87628d-5377-3ba7-b31b-cde1cc8d423f", "de87628d-5377-3ba7-b31b-cde1cc8d423f"},
		},
		{
			name: "v5 explicit gen command",
			args: []string{"gen", "-v", "5", "--namespace", "DNS", "--name", "www.contoso.com", "-f", "N"},
			want: []string{"016ab7295c3f55fe9d10e30cb958f0e0"},
		},
		{
			name: "v3 custom namespace",
			args: []string{"-v", "3", "--namespace", "6ba7b812-9dad-11d1-80b4-00c04fd430c8", "--name", "1.0.3166.1", "-f", "P"},
			want: []string{"(ef4dc0a0-9fc8-368e-9413-0bbf811aca7b)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, _, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestGen_TimeBased(t *testing.T) {
	for _, version := range []string{"1", "6", "7"} {
		t.Run("v"+version, func(t *testing.T) {
			lines, _, err := runCLI(t, "-v", version, "-n", "5", "--v7-mode", "counter")
			require.NoError(t, err)
			require.Len(t, lines, 5)

			seen := make(map[string]bool)
			for _, line := range lines {
				uuid, err := rfcuuid.Parse(line)
				require.NoError(t, err)
				assert.Equal(t, version, uuid.Version().String())
				assert.Equal(t, rfcuuid.VariantRFC4122, uuid.Variant())
				seen[line] = true
			}
			assert.Len(t, seen, 5)
		})
	}
}

func TestGen_FormatFromEnv(t *testing.T) {
	t.Setenv("UUIDGEN_FORMAT", "N")

	lines, _, err := runCLI(t, "-v", "7")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 32)
}

func TestGen_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"--format", "X"}},
		{"unsupported version", []string{"--version", "2"}},
		{"zero count", []string{"--count", "0"}},
		{"missing name", []string{"--version", "5"}},
		{"bad namespace", []string{"--version", "3", "--namespace", "nope", "--name", "x"}},
		{"unknown v7 mode", []string{"--version", "7", "--v7-mode", "fast"}},
		{"unknown flag", []string{"--bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, _, err := runCLI(t, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, lines)
		})
	}
}

func TestParse(t *testing.T) {
	var out bytes.Buffer
	log, _ := logtest.NewNullLogger()

	err := run([]string{"parse", "{164A714C-0C79-11EC-82A8-0242AC130003}", "de87628d53773ba7b31bcde1cc8d423f"}, &out, log)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "uuid:      164a714c-0c79-11ec-82a8-0242ac130003\n")
	assert.Contains(t, got, "version:   1\n")
	assert.Contains(t, got, "variant:   RFC4122\n")
	assert.Contains(t, got, "fields:    164a714c 0c79 11ec 82 a8 0242ac130003\n")
	assert.Contains(t, got, "time:      2021-09-03T05:37:54.6196300Z\n")
	assert.Contains(t, got, "version:   3\n")
	assert.Equal(t, 1, strings.Count(got, "time:"))
}

func TestParse_InvalidInputLogged(t *testing.T) {
	var out bytes.Buffer
	log, hook := logtest.NewNullLogger()

	err := run([]string{"parse", "not-a-uuid", "017f22e2-79b0-7cc3-98c4-dc0c0c07398f"}, &out, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out.String(), "time:      2022-02-22T19:22:22.0000000Z\n")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "not-a-uuid", entry.Data["input"])
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), rfcuuid.ErrInvalidFormat)
}

func TestLogLevel(t *testing.T) {
	_, hook, err := runCLI(t, "--log-level", "debug", "-v", "4")
	require.NoError(t, err)

	var debug int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel {
			debug++
		}
	}
	assert.Equal(t, 2, debug)

	_, hook, err = runCLI(t, "-v", "4")
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())

	_, _, err = runCLI(t, "--log-level", "trace")
	assert.Error(t, err)
}
