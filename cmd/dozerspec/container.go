package main

import (
	"log/slog"

	"github.com/samber/do"

	"github.com/ssarabun/dozer/builder"
	"github.com/ssarabun/dozer/examples/store"
	"github.com/ssarabun/dozer/examples/warehouse"
	"github.com/ssarabun/dozer/typeloader"
)

// settings carries the command line switches into the container.
type settings struct {
	strict bool
	dump   bool
}

// newInjector wires the services used by the commands.
func newInjector(logger *slog.Logger, s settings) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, s)
	do.Provide(injector, newRegistry)
	do.Provide(injector, newBuilderOptions)

	return injector
}

// newRegistry knows the builtin types and the sample models.
func newRegistry(_ *do.Injector) (*typeloader.Registry, error) {
	r := typeloader.NewRegistry()

	typeloader.Register[store.Customer](r)
	typeloader.Register[store.Order](r)
	typeloader.Register[store.OrderItem](r)
	typeloader.Register[store.OrderStatus](r)
	typeloader.Register[store.Attributes](r)

	typeloader.Register[warehouse.Customer](r)
	typeloader.Register[warehouse.Order](r)
	typeloader.Register[warehouse.OrderItem](r)
	typeloader.Register[warehouse.StatusConverter](r)
	typeloader.Register[warehouse.StockError](r)

	return r, nil
}

func newBuilderOptions(i *do.Injector) ([]builder.Option, error) {
	logger := do.MustInvoke[*slog.Logger](i)
	registry := do.MustInvoke[*typeloader.Registry](i)

	opts := []builder.Option{
		builder.WithLogger(logger),
		builder.WithTypeLoader(registry),
	}

	if do.MustInvoke[settings](i).strict {
		opts = append(opts, builder.WithStrictValidation())
	}

	return opts, nil
}
