package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type (
	testA         struct{}
	testB         struct{}
	testC         struct{}
	testConverter struct{}
)

func TestCustomConverterDescription_AppliesTo(t *testing.T) {
	a, b, c := reflect.TypeFor[testA](), reflect.TypeFor[testB](), reflect.TypeFor[testC]()
	conv := reflect.TypeFor[testConverter]()

	tests := []struct {
		name string
		desc CustomConverterDescription
		x, y reflect.Type
		want bool
	}{
		{name: "exact", desc: CustomConverterDescription{Converter: conv, ClassA: a, ClassB: b}, x: a, y: b, want: true},
		{name: "reversed", desc: CustomConverterDescription{Converter: conv, ClassA: a, ClassB: b}, x: b, y: a, want: true},
		{name: "other pair", desc: CustomConverterDescription{Converter: conv, ClassA: a, ClassB: b}, x: a, y: c, want: false},
		{name: "open class b", desc: CustomConverterDescription{Converter: conv, ClassA: a}, x: a, y: c, want: true},
		{name: "no classes", desc: CustomConverterDescription{Converter: conv}, x: a, y: b, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.AppliesTo(tt.x, tt.y))
		})
	}
}

func TestConfiguration_ConvertersFor(t *testing.T) {
	a, b, c := reflect.TypeFor[testA](), reflect.TypeFor[testB](), reflect.TypeFor[testC]()
	conv := reflect.TypeFor[testConverter]()

	cfg := NewConfiguration()
	cfg.CustomConverters = []CustomConverterDescription{
		{Converter: conv, ClassA: a, ClassB: b},
		{Converter: conv, ClassA: c, ClassB: b},
		{Converter: conv},
		{Converter: reflect.TypeFor[string](), ClassA: b},
	}

	got := cfg.ConvertersFor(b, a)
	if assert.Len(t, got, 2) {
		assert.Equal(t, a, got[0].ClassA)
		assert.Equal(t, reflect.TypeFor[string](), got[1].Converter)
	}
}

func TestConfiguration_IsCopyByReference(t *testing.T) {
	cfg := NewConfiguration()
	cfg.CopyByReferences = []string{
		"time.Time",
		"github.com/acme/money.*",
		"*.ID",
		"*Snapshot*",
	}

	tests := []struct {
		name string
		want bool
	}{
		{name: "time.Time", want: true},
		{name: "time.Duration", want: false},
		{name: "github.com/acme/money.Amount", want: true},
		{name: "github.com/acme/moneybags.Amount", want: false},
		{name: "github.com/acme/store.ID", want: true},
		{name: "github.com/acme/store.IDs", want: false},
		{name: "store.OrderSnapshotV2", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.IsCopyByReference(tt.name))
		})
	}
}

func TestMatchMask(t *testing.T) {
	assert.True(t, matchMask("*", ""))
	assert.True(t, matchMask("a*b*c", "abc"))
	assert.True(t, matchMask("a*b*c", "a-x-b-y-c"))
	assert.False(t, matchMask("a*a", "a"))
	assert.False(t, matchMask("a*b*c", "acb"))
}

func TestConfiguration_IsAllowedError(t *testing.T) {
	cfg := NewConfiguration()
	cfg.AllowedErrors = []reflect.Type{reflect.TypeFor[*testError]()}

	assert.True(t, cfg.IsAllowedError(reflect.TypeFor[*testError]()))
	assert.False(t, cfg.IsAllowedError(reflect.TypeFor[testError]()))
}

type testError struct{}

func (*testError) Error() string { return "test" }
