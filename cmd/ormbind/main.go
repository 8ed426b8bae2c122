// Package main provides the CLI entrypoint for ormbind.
//
// ormbind binds entity mapping metadata and prints the result:
//   - Reads a YAML mapping document (-mapping) or Go packages with orm
//     struct tags (-pkg)
//   - Binds attributes, identifier generators and row identifiers
//   - Prints a summary table, or a full dump with -dump
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"

	"ormbind/internal/analyze"
	"ormbind/internal/binding"
	"ormbind/internal/mapping"
	"ormbind/internal/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	mappingFile string
	pkg         string
	dump        bool
	verbose     bool
	legacy      bool
	strict      bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("ormbind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mappingFile, "mapping", "", "YAML mapping document to bind")
	fs.StringVar(&cfg.pkg, "pkg", "", "Go package pattern to read orm struct tags from")
	fs.BoolVar(&cfg.dump, "dump", false, "dump the bound model instead of the summary")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.BoolVar(&cfg.legacy, "legacy-generators", false, "use legacy identifier generator names")
	fs.BoolVar(&cfg.strict, "strict-generators", false, "fail on conflicting generator definitions")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if (cfg.mappingFile == "") == (cfg.pkg == "") {
		fs.Usage()
		return nil, errors.New("exactly one of -mapping or -pkg is required")
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		fmt.Fprintln(stderr, "ormbind:", err)

		return 1
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	doc, err := load(cfg, logger)
	if err != nil {
		logger.Error("load failed", "error", err)
		return 1
	}

	opts := []model.Option{model.WithLogger(logger), model.WithEagerTypes()}
	if cfg.legacy {
		opts = append(opts, model.WithLegacyGenerators())
	}

	if cfg.strict {
		opts = append(opts, model.WithStrictGenerators())
	}

	m, _, err := model.Build(doc, opts...)
	if m != nil {
		if cfg.dump {
			dump(stdout, m)
		} else if werr := writeSummary(stdout, m); werr != nil {
			logger.Error("write failed", "error", werr)
			return 1
		}
	}

	if err != nil {
		logger.Error("binding failed", "error", err)
		return 1
	}

	return 0
}

func load(cfg *config, logger *slog.Logger) (*mapping.Document, error) {
	if cfg.mappingFile != "" {
		return mapping.LoadFile(cfg.mappingFile)
	}

	return analyze.NewAnalyzer(logger).LoadPackages(cfg.pkg)
}

func dump(w io.Writer, m *model.Model) {
	cs := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
		MaxDepth:                8,
	}

	for _, e := range m.Entities() {
		fmt.Fprintf(w, "== %s ==\n", e.Name)
		cs.Fdump(w, e.Attributes)
	}

	for _, h := range m.Hierarchies() {
		fmt.Fprintf(w, "== %s row id ==\n", h.Root.Name)
		cs.Fdump(w, h.RowID)
	}
}

func writeSummary(w io.Writer, m *model.Model) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ENTITY\tATTRIBUTE\tTYPE\tSQL\tCOLUMNS\tFLAGS")

	for _, e := range m.Entities() {
		for _, a := range e.Attributes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.Name, a.Name(), a.DeclaredType(), sqlName(a), columnNames(a.Columns()), flags(a))
		}
	}

	for _, h := range m.Hierarchies() {
		col := h.RowID.Column()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			h.Root.Name, h.RowID.Name(), "-", "INTEGER", h.RowID.Table().QualifiedName(), "expr="+col.Expression)
	}

	return tw.Flush()
}

func sqlName(a *binding.AttributeDescriptor) string {
	if a.Nature() != binding.NatureBasic {
		return a.Nature().String()
	}

	t, err := a.SQLType()
	if err != nil {
		return "error"
	}

	return t.Name
}

func columnNames(cols []binding.ColumnBinding) string {
	if len(cols) == 0 {
		return "-"
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}

	return strings.Join(names, ",")
}

func flags(a *binding.AttributeDescriptor) string {
	var out []string

	if a.IsIdentifier() {
		out = append(out, "id")
		if gen := a.IdGenerator(); gen != nil {
			out = append(out, "gen="+gen.Strategy)
		}
	}

	if a.IsVersioned() {
		out = append(out, "version")
	}

	if a.IsLazy() {
		out = append(out, "lazy")
	}

	if !a.IsOptional() {
		out = append(out, "required")
	}

	if len(out) == 0 {
		return "-"
	}

	return strings.Join(out, ",")
}
