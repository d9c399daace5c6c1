package specfile

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssarabun/dozer/builder"
	"github.com/ssarabun/dozer/examples/store"
	"github.com/ssarabun/dozer/examples/warehouse"
	"github.com/ssarabun/dozer/mapping"
	"github.com/ssarabun/dozer/typeloader"
)

func newTestRegistry() *typeloader.Registry {
	r := typeloader.NewRegistry()
	typeloader.Register[store.Order](r)
	typeloader.Register[store.OrderItem](r)
	typeloader.Register[store.OrderStatus](r)
	typeloader.Register[store.Customer](r)
	typeloader.Register[store.Attributes](r)
	typeloader.Register[warehouse.Order](r)
	typeloader.Register[warehouse.OrderItem](r)
	typeloader.Register[warehouse.Customer](r)
	typeloader.Register[warehouse.StatusConverter](r)
	typeloader.Register[warehouse.StockError](r)

	return r
}

// buildTestSpec declares a specification touching every persisted attribute.
func buildTestSpec(t *testing.T) *mapping.Specification {
	t.Helper()

	b := builder.NewSpecification(builder.WithTypeLoader(newTestRegistry()))

	cfg := b.Configuration().
		MapNull(false).
		StopOnErrors(true).
		DateFormat("2006-01-02").
		CopyByReference("time.*")
	cfg.CustomConverter(reflect.TypeFor[warehouse.StatusConverter]()).
		ClassA(reflect.TypeFor[store.OrderStatus]()).
		ClassB(reflect.TypeFor[string]())
	require.NoError(t, cfg.AllowedError(reflect.TypeFor[*warehouse.StockError]()))

	cm := b.NewClassMapping().MapID("orders").Direction(mapping.OneWay).Wildcard(false)
	cm.SourceType(reflect.TypeFor[store.Order]()).CreateMethod("NewOrder")
	cm.DestinationType(reflect.TypeFor[warehouse.Order]()).BeanFactory("orders").Accessible(false)

	f := cm.NewFieldMapping().CopyByReference(false).Relationship(mapping.NonCumulative).RemoveOrphans(true)
	src, err := f.Source("items[0]")
	require.NoError(t, err)
	src.GetMethod("FirstItem")
	dst, err := f.DestinationOfType("firstItem", "warehouse.OrderItem")
	require.NoError(t, err)
	dst.Accessible(true)

	f = cm.NewFieldMapping().
		SourceHint("store.OrderItem").
		DestinationHint("warehouse.OrderItem").
		CustomConverterID("status").
		CustomConverterParam("lower")
	_, err = f.Source("items")
	require.NoError(t, err)
	_, err = f.Destination("items")
	require.NoError(t, err)

	_, err = cm.NewFieldExclusion().Direction(mapping.ReverseOneWay).Source("customerId")
	require.NoError(t, err)

	attrs := b.NewClassMapping()
	attrs.SourceType(reflect.TypeFor[store.Attributes]()).MapGetMethod("Get").MapSetMethod("Put")
	attrs.DestinationType(reflect.TypeFor[warehouse.Customer]())

	fd, err := attrs.NewFieldMapping().Source("email")
	require.NoError(t, err)
	fd.Key("email").Iterate()

	spec, err := b.Build()
	require.NoError(t, err)

	return spec
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			spec := buildTestSpec(t)
			doc := FromSpecification(spec)

			data, err := Marshal(doc, format)
			require.NoError(t, err)

			parsed, err := Unmarshal(data, format)
			require.NoError(t, err, string(data))
			assert.Equal(t, doc, parsed, string(data))

			replayed, err := parsed.Specification(builder.WithTypeLoader(newTestRegistry()))
			require.NoError(t, err)

			assert.Equal(t, doc, FromSpecification(replayed), spew.Sdump(replayed))
			assert.Equal(t, spec.RuleCount(), replayed.RuleCount())

			for i, cm := range spec.ClassMappings {
				got := replayed.ClassMappings[i]
				assert.Equal(t, cm.Source.Type, got.Source.Type)
				assert.Equal(t, cm.Destination.Type, got.Destination.Type)

				for j := range cm.Rules {
					assert.Equal(t, cm.Rules[j].Kind, got.Rules[j].Kind)
				}
			}
		})
	}
}

func TestUnmarshal_YAML(t *testing.T) {
	data := []byte(`
configuration:
  map-null: false
  custom-converters:
    - type: warehouse.StatusConverter
      class-a: store.OrderStatus
      class-b: string
  allowed-errors:
    - "*warehouse.StockError"
mappings:
  - class-a:
      name: store.Order
    class-b:
      name: warehouse.Order
    fields:
      - a: {name: name}
        b: {name: fullName}
      - a: {name: "items[0]"}
        b: {name: firstItem}
      - exclude: true
        a: {name: secret}
        b: {name: secret}
`)

	doc, err := Unmarshal(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, doc.Version)

	spec, err := doc.Specification(builder.WithTypeLoader(newTestRegistry()))
	require.NoError(t, err)

	require.Len(t, spec.ClassMappings, 1)

	rules := spec.ClassMappings[0].Rules
	require.Len(t, rules, 3)
	assert.Equal(t, "name", rules[0].Source.Name)
	assert.Equal(t, "items", rules[1].Source.Name)
	assert.True(t, rules[1].Source.Indexed)
	assert.Equal(t, 0, rules[1].Source.Index)
	assert.Equal(t, mapping.RuleExclusion, rules[2].Kind)

	cfg := spec.Configuration
	assert.False(t, *cfg.MapNull)
	require.Len(t, cfg.CustomConverters, 1)
	assert.Equal(t, reflect.TypeFor[store.OrderStatus](), cfg.CustomConverters[0].ClassA)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[*warehouse.StockError]()}, cfg.AllowedErrors)
}

func TestUnmarshal_UnknownKey(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{format: FormatYAML, data: "version: \"1\"\nmapings: []\n"},
		{format: FormatTOML, data: "version = \"1\"\nmapings = []\n"},
		{format: FormatJSON, data: `{"version": "1", "mapings": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestSpecification_Errors(t *testing.T) {
	t.Run("unknown direction", func(t *testing.T) {
		doc := &Document{Mappings: []MappingDoc{{Direction: "sideways"}}}

		_, err := doc.Specification()
		require.Error(t, err)
		assert.True(t, errors.Is(err, mapping.ErrInvalidConfiguration))
	})

	t.Run("unresolved type", func(t *testing.T) {
		doc := &Document{Mappings: []MappingDoc{{
			ClassA: &TypeDoc{Name: "store.Order"},
			ClassB: &TypeDoc{Name: "warehouse.Nothing"},
		}}}

		spec, err := doc.Specification(builder.WithTypeLoader(newTestRegistry()))
		require.Error(t, err)
		assert.Nil(t, spec)
		assert.True(t, errors.Is(err, mapping.ErrTypeResolution))
	})

	t.Run("blank field name", func(t *testing.T) {
		doc := &Document{Mappings: []MappingDoc{{
			ClassA: &TypeDoc{Name: "store.Order"},
			ClassB: &TypeDoc{Name: "warehouse.Order"},
			Fields: []FieldDoc{{Exclude: true, A: &FieldRefDoc{Name: " "}}},
		}}}

		_, err := doc.Specification(builder.WithTypeLoader(newTestRegistry()))
		assert.True(t, errors.Is(err, mapping.ErrInvalidFieldName))
	})
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "spec.yaml", want: FormatYAML},
		{path: "dir/spec.YML", want: FormatYAML},
		{path: "spec.toml", want: FormatTOML},
		{path: "spec.json", want: FormatJSON},
		{path: "spec.xml", wantErr: true},
		{path: "spec", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownFormat))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteFile_LoadFile(t *testing.T) {
	doc := FromSpecification(buildTestSpec(t))
	dir := t.TempDir()

	for _, name := range []string{"spec.yaml", "spec.toml", "spec.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)

			require.NoError(t, WriteFile(doc, path))

			loaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, doc, loaded)
		})
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
