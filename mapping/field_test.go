package mapping

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		typeName  string
		wantName  string
		indexed   bool
		index     int
		wantType  string
		rendering string
	}{
		{name: "plain", raw: "name", wantName: "name", rendering: "name"},
		{name: "trimmed", raw: "  name\t", wantName: "name", rendering: "name"},
		{name: "deep", raw: "address.street", wantName: "address.street", rendering: "address.street"},
		{name: "indexed", raw: "items[3]", wantName: "items", indexed: true, index: 3, rendering: "items[3]"},
		{name: "indexed zero", raw: "items[0]", wantName: "items", indexed: true, index: 0, rendering: "items[0]"},
		{name: "multi digit", raw: "rows[120]", wantName: "rows", indexed: true, index: 120, rendering: "rows[120]"},
		{name: "only last index", raw: "a[0][1]", wantName: "a[0]", indexed: true, index: 1, rendering: "a[0][1]"},
		{name: "deep indexed", raw: "order.items[2]", wantName: "order.items", indexed: true, index: 2, rendering: "order.items[2]"},
		{name: "empty brackets", raw: "items[]", wantName: "items[]", rendering: "items[]"},
		{name: "non digit index", raw: "items[x]", wantName: "items[x]", rendering: "items[x]"},
		{name: "signed index", raw: "items[-1]", wantName: "items[-1]", rendering: "items[-1]"},
		{name: "no base", raw: "[3]", wantName: "[3]", rendering: "[3]"},
		{name: "inner index", raw: "items[3].name", wantName: "items[3].name", rendering: "items[3].name"},
		{name: "with type", raw: "total", typeName: " int64 ", wantName: "total", wantType: "int64", rendering: "total"},
		{name: "blank type", raw: "total", typeName: "   ", wantName: "total", rendering: "total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseField(tt.raw, tt.typeName)
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, f.Name)
			assert.Equal(t, tt.indexed, f.Indexed)
			assert.Equal(t, tt.index, f.Index)
			assert.Equal(t, tt.wantType, f.DeclaredType)
			assert.Equal(t, tt.rendering, f.String())
		})
	}
}

func TestParseField_Invalid(t *testing.T) {
	for _, raw := range []string{"", " ", "\t\n", "items[99999999999999999999999]"} {
		t.Run(raw, func(t *testing.T) {
			f, err := ParseField(raw, "")
			require.Error(t, err)
			assert.Nil(t, f)
			assert.True(t, errors.Is(err, ErrInvalidFieldName))
		})
	}
}

func TestParseField_UnindexedNamesUnchanged(t *testing.T) {
	for _, raw := range []string{"a", "fullName", "x.y.z", "_id", "Name2"} {
		f, err := ParseField(raw, "")
		require.NoError(t, err)
		assert.False(t, f.Indexed, raw)
		assert.Equal(t, raw, f.Name)
	}
}

func TestFieldReference_Traits(t *testing.T) {
	var nilRef *FieldReference

	assert.False(t, nilRef.IsMapKeyed())
	assert.False(t, nilRef.HasCustomAccessors())
	assert.Empty(t, nilRef.String())

	assert.True(t, (&FieldReference{MapAccessorMethod: "get"}).IsMapKeyed())
	assert.True(t, (&FieldReference{MapMutatorMethod: "put"}).IsMapKeyed())
	assert.False(t, (&FieldReference{MapKey: "k"}).IsMapKeyed())

	assert.True(t, (&FieldReference{AccessorMethod: "getName"}).HasCustomAccessors())
	assert.True(t, (&FieldReference{MutatorMethod: "setName"}).HasCustomAccessors())
	assert.False(t, (&FieldReference{CreationMethod: "newName"}).HasCustomAccessors())
}
