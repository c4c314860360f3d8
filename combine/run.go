package combine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssmix/css"
	"cssmix/state"
)

// Run implements the "combine" subcommand: merge a light and a dark theme
// into a single stylesheet switched by prefers-color-scheme.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("combine")

	srcLight := cmd.Args().Get(0)
	srcDark := cmd.Args().Get(1)
	if len(srcLight) == 0 || len(srcDark) == 0 {
		return errors.New("both light and dark stylesheets must be specified")
	}
	if srcLight, err = filepath.Abs(srcLight); err != nil {
		return err
	}
	if srcDark, err = filepath.Abs(srcDark); err != nil {
		return err
	}

	dst := cmd.Args().Get(2)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if fi, er := os.Stat(dst); er == nil && fi.IsDir() {
		dst = filepath.Join(dst, env.Cfg.Combine.OutputName)
	}
	if cmd.Args().Len() > 3 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	if _, er := os.Stat(dst); er == nil && !env.Overwrite {
		return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", dst)
	}

	prefix := env.Cfg.Combine.Prefix
	if p := cmd.String("prefix"); len(p) > 0 {
		prefix = p
	}

	log.Info("Processing starting",
		zap.String("light", srcLight),
		zap.String("dark", srcDark),
		zap.String("destination", dst),
		zap.String("prefix", prefix))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	dataLight, err := os.ReadFile(srcLight)
	if err != nil {
		return fmt.Errorf("unable to read light theme from %q: %w", srcLight, err)
	}
	dataDark, err := os.ReadFile(srcDark)
	if err != nil {
		return fmt.Errorf("unable to read dark theme from %q: %w", srcDark, err)
	}
	env.Rpt.StoreData("css/light.css", dataLight)
	env.Rpt.StoreData("css/dark.css", dataDark)

	if env.Cfg.Combine.CheckInputs {
		checker := css.NewChecker(log)
		for _, in := range []struct {
			name string
			data []byte
		}{{"light", dataLight}, {"dark", dataDark}} {
			for _, w := range checker.Check(in.data, in.name) {
				log.Warn("Questionable CSS construct", zap.String("theme", in.name), zap.String("finding", w))
			}
		}
	}

	out, err := Merge(dataLight, dataDark, Options{
		Prefix:      prefix,
		Placeholder: env.Cfg.Combine.Placeholder,
		MediaScheme: env.Cfg.Combine.MediaScheme,
	}, log)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("css/"+filepath.Base(dst), []byte(out))

	if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write destination '%s': %w", dst, err)
	}
	log.Info("Stylesheet written", zap.String("destination", dst), zap.Int("bytes", len(out)))
	return nil
}
