package mapping

import "reflect"

// Specification is the unit handed to the mapping engine: one global
// configuration and the class mappings in declaration order.
type Specification struct {
	Configuration *Configuration
	ClassMappings []*ClassMapping
}

// Find returns the first class mapping between a and b, in either
// orientation, whose MapID equals mapID. Returns nil when none matches.
func (s *Specification) Find(a, b reflect.Type, mapID string) *ClassMapping {
	for _, cm := range s.ClassMappings {
		if cm.MapID != mapID || !cm.IsComplete() {
			continue
		}

		src, dst := cm.Source.Type, cm.Destination.Type
		if (src == a && dst == b) || (src == b && dst == a) {
			return cm
		}
	}

	return nil
}

// RuleCount returns the number of rules across all class mappings.
func (s *Specification) RuleCount() int {
	n := 0
	for _, cm := range s.ClassMappings {
		n += len(cm.Rules)
	}

	return n
}
