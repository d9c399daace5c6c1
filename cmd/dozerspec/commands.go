package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/samber/do"

	"github.com/ssarabun/dozer/builder"
	"github.com/ssarabun/dozer/internal/common"
	"github.com/ssarabun/dozer/mapping"
	"github.com/ssarabun/dozer/specfile"
)

var errUsage = errors.New("usage")

type app struct {
	logger   *slog.Logger
	settings settings
	options  []builder.Option
}

func newApp(i *do.Injector) *app {
	return &app{
		logger:   do.MustInvoke[*slog.Logger](i),
		settings: do.MustInvoke[settings](i),
		options:  do.MustInvoke[[]builder.Option](i),
	}
}

func (a *app) run(cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "check":
		if len(args) != 1 {
			return errors.Wrap(errUsage, "check <file>")
		}

		return a.check(args[0], out)
	case "convert":
		if len(args) != 2 {
			return errors.Wrap(errUsage, "convert <in> <out>")
		}

		return a.convert(args[0], args[1])
	default:
		return errors.Wrapf(errUsage, "unknown command %q", cmd)
	}
}

// load reads and builds a spec file.
func (a *app) load(path string) (*mapping.Specification, error) {
	a.logger.Debug("loading spec file", "path", path)

	doc, err := specfile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	spec, err := doc.Specification(a.options...)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", path)
	}

	return spec, nil
}

func (a *app) check(path string, out io.Writer) error {
	spec, err := a.load(path)
	if err != nil {
		var buildErr *builder.BuildError
		if errors.As(err, &buildErr) {
			for _, e := range buildErr.Errors {
				fmt.Fprintf(out, "error: %v\n", e)
			}
		}

		return err
	}

	if a.settings.dump {
		spew.Fdump(out, spec)
	}

	for _, cm := range spec.ClassMappings {
		fmt.Fprintf(out, "%s -> %s: %d rule(s)\n", shortName(cm.Source), shortName(cm.Destination), len(cm.Rules))
	}

	res := mapping.Validate(spec)
	for _, d := range res.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d.String())
	}

	fmt.Fprintf(out, "%d class mapping(s), %d rule(s), %d error(s), %d warning(s)\n",
		len(spec.ClassMappings), spec.RuleCount(), len(res.Errors), len(res.Warnings))

	return res.Error()
}

func (a *app) convert(in, out string) error {
	spec, err := a.load(in)
	if err != nil {
		return err
	}

	if err := specfile.WriteFile(specfile.FromSpecification(spec), out); err != nil {
		return err
	}

	a.logger.Info("spec converted", "from", in, "to", out)

	return nil
}

// shortName renders a type as "pkg.Name" for display.
func shortName(t *mapping.TypeDefinition) string {
	if t == nil {
		return "?"
	}

	if t.Type == nil || t.Type.Name() == "" || t.Type.PkgPath() == "" {
		return t.Name
	}

	return common.PkgAlias(t.Type.PkgPath()) + "." + t.Type.Name()
}
