package commands

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"debug-generator/internal/analyze"
	"debug-generator/internal/config"
	"debug-generator/internal/diagnostic"
	"debug-generator/internal/gen"
	"debug-generator/internal/logging"
	"debug-generator/internal/plan"
)

// session carries the state shared by one command invocation.
type session struct {
	cmd      *cobra.Command
	cfg      *config.Config
	log      *zap.Logger
	patterns []string
}

// pkgResult holds the plans of one package.
type pkgResult struct {
	pkg   *analyze.PackageInfo
	plans []*plan.RenderPlan
}

func newSession(cmd *cobra.Command, args []string) (*session, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read --config")
	}

	cfg, err := config.Load("", configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.Verbose, zapcore.AddSync(cmd.ErrOrStderr()))
	log.Debug("configuration loaded",
		zap.Strings("types", cfg.Types),
		zap.Strings("allow_tags", cfg.AllowTags),
		zap.Strings("build_tags", cfg.BuildTags),
		zap.String("runtime_import", cfg.RuntimeImport))

	return &session{cmd: cmd, cfg: cfg, log: log, patterns: args}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

// planAll loads the packages and plans every selected type. Diagnostics of
// all packages are reported before failing.
func (s *session) planAll() ([]pkgResult, error) {
	pkgs, err := analyze.NewLoader("", s.cfg.BuildTags...).LoadPackages(s.patterns...)
	if err != nil {
		return nil, err
	}

	if s.outputHasDir() && len(pkgs) > 1 {
		return nil, errors.WithHint(
			errors.Newf("--output %s names a directory but %d packages were matched", s.cfg.Output, len(pkgs)),
			"use a plain file name or select a single package")
	}

	var diags diagnostic.Diagnostics
	var results []pkgResult

	for _, pkg := range pkgs {
		decls, err := pkg.Select(s.cfg.Types)
		if err != nil {
			return nil, err
		}

		if len(decls) == 0 {
			s.log.Warn("no types selected; use --type or the "+analyze.DeriveDirective+" directive",
				zap.String(logging.FieldPackage, pkg.Path))
			continue
		}

		plans, d := plan.BuildAll(decls, s.cfg.PlanOptions())
		diags.Merge(d)

		for _, p := range plans {
			s.log.Debug("planned type",
				zap.String(logging.FieldPackage, pkg.Path),
				zap.String(logging.FieldType, p.TypeName),
				zap.Int(logging.FieldCount, len(p.Fields)))
		}

		if plans != nil {
			results = append(results, pkgResult{pkg: pkg, plans: plans})
		}
	}

	for _, w := range diags.Warnings {
		s.log.Warn(w.String(),
			zap.String(logging.FieldCode, w.Code),
			zap.String(logging.FieldType, w.TypeName),
			zap.String(logging.FieldField, w.FieldName))
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			fmt.Fprintln(s.cmd.ErrOrStderr(), e.String())
			if e.Hint != "" {
				fmt.Fprintf(s.cmd.ErrOrStderr(), "\thint: %s\n", e.Hint)
			}
		}

		return nil, errors.Newf("%d error(s), no code generated", len(diags.Errors))
	}

	return results, nil
}

// generate renders the file of one package and returns it with its target
// directory.
func (s *session) generate(r pkgResult) (*gen.GeneratedFile, string, error) {
	dir, filename := r.pkg.Dir, s.cfg.Output
	if s.outputHasDir() {
		dir, filename = filepath.Dir(s.cfg.Output), filepath.Base(s.cfg.Output)
	}

	g := gen.NewGenerator(s.cfg.GeneratorConfig(dir))

	file, err := g.GenerateFile(r.pkg.Name, filename, r.plans)
	if err != nil {
		return nil, "", errors.Wrapf(err, "generating package %s", r.pkg.Path)
	}

	return file, dir, nil
}

// writeAll generates every file before writing any of them.
func (s *session) writeAll(results []pkgResult) error {
	type output struct {
		file *gen.GeneratedFile
		dir  string
	}

	outputs := make([]output, 0, len(results))
	for _, r := range results {
		file, dir, err := s.generate(r)
		if err != nil {
			return err
		}

		outputs = append(outputs, output{file: file, dir: dir})
	}

	for _, o := range outputs {
		if err := gen.WriteFiles([]gen.GeneratedFile{*o.file}, o.dir); err != nil {
			return err
		}

		s.log.Info("generated",
			zap.String(logging.FieldFile, filepath.Join(o.dir, o.file.Filename)))
	}

	return nil
}

func (s *session) outputHasDir() bool {
	return s.cfg.Output != "" && filepath.Base(s.cfg.Output) != s.cfg.Output
}
