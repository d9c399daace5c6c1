// Package builder assembles a mapping.Specification through a fluent,
// two-phase API.
//
// In the declare phase callers register a configuration, class mappings and
// field rules. Field-level builders only record drafts; nothing is resolved
// until Build walks every class mapping and turns its drafts into rules, in
// declaration order:
//
//	b := builder.NewSpecification(builder.WithTypeLoader(registry))
//
//	cfg := b.Configuration().MapNull(false)
//	cfg.CustomConverter(reflect.TypeFor[Upper]()).
//		ClassA(reflect.TypeFor[store.Customer]()).
//		ClassB(reflect.TypeFor[warehouse.Customer]())
//
//	cm := b.NewClassMapping()
//	cm.SourceType(reflect.TypeFor[store.Customer]())
//	if _, err := cm.DestinationTypeName("warehouse.Customer"); err != nil {
//		return err
//	}
//
//	f := cm.NewFieldMapping()
//	f.Source("fullName")
//	f.Destination("name")
//
//	cm.NewFieldExclusion().Source("secret")
//
//	spec, err := b.Build()
//
// Declarations that can fail (type names, field names, allowed errors)
// return the error immediately and Build reports it again, so a
// Specification is never produced from a failed declaration.
//
// A Builder is not safe for concurrent use.
package builder
