package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssarabun/dozer/mapping"
	"github.com/ssarabun/dozer/specfile"
)

const orderSpec = `
configuration:
  map-null: false
mappings:
  - class-a: {name: store.Order}
    class-b: {name: warehouse.Order}
    fields:
      - a: {name: "items[0]"}
        b: {name: firstItem}
      - exclude: true
        a: {name: customerId}
`

func newTestApp(s settings) *app {
	return newApp(newInjector(slog.New(slog.DiscardHandler), s))
}

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCheck(t *testing.T) {
	path := writeSpec(t, "orders.yaml", orderSpec)

	var out bytes.Buffer
	require.NoError(t, newTestApp(settings{}).run("check", []string{path}, &out))

	assert.Contains(t, out.String(), "store.Order -> warehouse.Order: 2 rule(s)")
	assert.Contains(t, out.String(), "1 class mapping(s), 2 rule(s), 0 error(s), 0 warning(s)")
}

func TestCheck_Dump(t *testing.T) {
	path := writeSpec(t, "orders.yaml", orderSpec)

	var out bytes.Buffer
	require.NoError(t, newTestApp(settings{dump: true}).run("check", []string{path}, &out))

	assert.Contains(t, out.String(), "ClassMappings")
}

func TestCheck_IncompleteMapping(t *testing.T) {
	path := writeSpec(t, "partial.yaml", "mappings:\n  - class-a: {name: store.Customer}\n")

	t.Run("permissive", func(t *testing.T) {
		var out bytes.Buffer
		err := newTestApp(settings{}).run("check", []string{path}, &out)

		require.Error(t, err)
		assert.Contains(t, out.String(), "incomplete_class_mapping")
	})

	t.Run("strict", func(t *testing.T) {
		var out bytes.Buffer
		err := newTestApp(settings{strict: true}).run("check", []string{path}, &out)

		require.Error(t, err)
		assert.True(t, errors.Is(err, mapping.ErrInvalidSpecification))
		assert.Contains(t, out.String(), "error: ")
	})
}

func TestCheck_UnknownType(t *testing.T) {
	path := writeSpec(t, "bad.yaml", "mappings:\n  - class-a: {name: store.Nope}\n    class-b: {name: warehouse.Order}\n")

	var out bytes.Buffer
	err := newTestApp(settings{}).run("check", []string{path}, &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, mapping.ErrTypeResolution))
}

func TestConvert(t *testing.T) {
	in := writeSpec(t, "orders.yaml", orderSpec)
	out := filepath.Join(t.TempDir(), "orders.toml")

	require.NoError(t, newTestApp(settings{}).run("convert", []string{in, out}, &bytes.Buffer{}))

	doc, err := specfile.LoadFile(out)
	require.NoError(t, err)
	require.Len(t, doc.Mappings, 1)
	assert.Equal(t, "github.com/ssarabun/dozer/examples/store.Order", doc.Mappings[0].ClassA.Name)
	assert.Len(t, doc.Mappings[0].Fields, 2)
}

func TestRun_Usage(t *testing.T) {
	a := newTestApp(settings{})

	for _, tc := range []struct {
		cmd  string
		args []string
	}{
		{cmd: "check"},
		{cmd: "convert", args: []string{"only-one"}},
		{cmd: "generate"},
	} {
		t.Run(tc.cmd, func(t *testing.T) {
			err := a.run(tc.cmd, tc.args, &bytes.Buffer{})
			assert.True(t, errors.Is(err, errUsage))
		})
	}
}
