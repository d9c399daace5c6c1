package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecification_Find(t *testing.T) {
	a, b, c := reflect.TypeFor[testA](), reflect.TypeFor[testB](), reflect.TypeFor[testC]()

	plain := &ClassMapping{
		Source:      &TypeDefinition{Name: "a", Type: a},
		Destination: &TypeDefinition{Name: "b", Type: b},
		Rules:       []Rule{{Kind: RuleGeneric, Source: &FieldReference{Name: "x"}}},
	}
	named := &ClassMapping{
		Source:      &TypeDefinition{Name: "a", Type: a},
		Destination: &TypeDefinition{Name: "b", Type: b},
		MapID:       "summary",
		Rules: []Rule{
			{Kind: RuleGeneric, Source: &FieldReference{Name: "y"}},
			{Kind: RuleExclusion, Source: &FieldReference{Name: "z"}},
		},
	}
	incomplete := &ClassMapping{Source: &TypeDefinition{Name: "c", Type: c}}

	spec := &Specification{ClassMappings: []*ClassMapping{incomplete, plain, named}}

	assert.Same(t, plain, spec.Find(a, b, ""))
	assert.Same(t, plain, spec.Find(b, a, ""))
	assert.Same(t, named, spec.Find(a, b, "summary"))
	assert.Nil(t, spec.Find(a, c, ""))
	assert.Nil(t, spec.Find(a, b, "other"))

	assert.Equal(t, 3, spec.RuleCount())
}
