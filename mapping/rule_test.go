package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHintContainer(t *testing.T) {
	assert.Nil(t, NewHintContainer(""))
	assert.Nil(t, NewHintContainer(" , "))

	h := NewHintContainer("store.OrderItem, warehouse.OrderItem")
	require.NotNil(t, h)
	assert.Equal(t, []string{"store.OrderItem", "warehouse.OrderItem"}, h.Hints)
	assert.Equal(t, "store.OrderItem,warehouse.OrderItem", h.String())

	var nilHint *HintContainer
	assert.Empty(t, nilHint.String())
}

func TestRule_CopyByReferenceSet(t *testing.T) {
	r := Rule{Kind: RuleGeneric}
	assert.False(t, r.CopyByReferenceSet())

	r.CopyByReference = Bool(false)
	assert.True(t, r.CopyByReferenceSet())
	assert.False(t, *r.CopyByReference)
}

func TestRule_EffectiveDirection(t *testing.T) {
	cm := NewClassMapping(nil)
	r := Rule{Kind: RuleGeneric}

	assert.Equal(t, Bidirectional, r.EffectiveDirection(nil))
	assert.Equal(t, Bidirectional, r.EffectiveDirection(cm))

	cm.Direction = OneWay
	assert.Equal(t, OneWay, r.EffectiveDirection(cm))

	r.Direction = ReverseOneWay
	assert.Equal(t, ReverseOneWay, r.EffectiveDirection(cm))
}

func TestRule_String(t *testing.T) {
	r := Rule{
		Kind:        RuleGeneric,
		Source:      &FieldReference{Name: "items", Indexed: true, Index: 0},
		Destination: &FieldReference{Name: "firstItem"},
	}
	assert.Equal(t, "items[0] -> firstItem", r.String())
	assert.False(t, r.IsExclusion())

	ex := Rule{Kind: RuleExclusion, Source: &FieldReference{Name: "secret"}}
	assert.Equal(t, "secret -x- ?", ex.String())
	assert.True(t, ex.IsExclusion())
}
