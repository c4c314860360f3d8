package combine

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssmix/archive"
	"cssmix/css"
	"cssmix/state"
)

// RunCheck implements the "check" subcommand: scan stylesheets for
// constructs the combiner does not understand and report findings without
// producing any output file. Arguments may be plain stylesheets or zip
// archives, in which case every ".css" entry inside is checked.
func RunCheck(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheets to check have been specified")
	}

	checker := css.NewChecker(log)

	var files, total int
	report := func(name string, data []byte) {
		files++
		findings := checker.Check(data, name)
		total += len(findings)
		for _, w := range findings {
			log.Warn("Questionable CSS construct", zap.String("file", name), zap.String("finding", w))
		}
		if len(findings) == 0 {
			log.Info("No findings", zap.String("file", name))
		}
	}

	for _, name := range cmd.Args().Slice() {
		if strings.EqualFold(filepath.Ext(name), ".zip") {
			err := archive.Walk(name, ".css", func(arc string, f *zip.File) error {
				r, err := f.Open()
				if err != nil {
					return err
				}
				defer r.Close()
				data, err := io.ReadAll(r)
				if err != nil {
					return err
				}
				report(arc+":"+f.Name, data)
				return nil
			})
			if err != nil {
				return fmt.Errorf("unable to check stylesheets in archive %q: %w", name, err)
			}
			continue
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet %q: %w", name, err)
		}
		report(name, data)
	}
	log.Info("Check completed", zap.Int("files", files), zap.Int("findings", total))
	return nil
}
