package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/imagefx"
)

type applyFlags struct {
	effect    string
	output    string
	outDir    string
	params    string
	jobs      int
	thumbnail string
}

// job is one input file and where its result goes.
type job struct {
	input  string
	output string
}

func newApplyCmd(fs afero.Fs) *cobra.Command {
	var f applyFlags

	cmd := &cobra.Command{
		Use:   "apply -e EFFECT [flags] INPUT...",
		Short: "Apply an effect to one or more images",
		Long: `Apply loads every INPUT, runs the effect and saves the result.

With a single input the result goes to --output, or to INPUT_EFFECT.png next
to the input. With several inputs results are written to --out-dir.
The output encoding follows the file extension (png, jpg, bmp, tif).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, fs, &f, args)
		},
	}

	cmd.Flags().StringVarP(&f.effect, "effect", "e", "", "effect name or alias (see 'imagefx list')")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single input only)")
	cmd.Flags().StringVar(&f.outDir, "out-dir", "", "directory for results")
	cmd.Flags().StringVar(&f.params, "params", "", "YAML file overriding effect parameters")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", runtime.NumCPU(), "files processed concurrently")
	cmd.Flags().StringVar(&f.thumbnail, "thumbnail", "", "shrink results to fit WxH")
	_ = cmd.MarkFlagRequired("effect")
	cmd.MarkFlagsMutuallyExclusive("output", "out-dir")

	return cmd
}

func runApply(cmd *cobra.Command, fs afero.Fs, f *applyFlags, inputs []string) error {
	effect, err := imagefx.ParseEffect(f.effect)
	if err != nil {
		return err
	}
	if f.output != "" && len(inputs) > 1 {
		return errors.New("--output takes a single input; use --out-dir")
	}
	if f.jobs < 1 {
		return fmt.Errorf("--jobs %d must be positive", f.jobs)
	}

	params := imagefx.DefaultParams()
	if f.params != "" {
		if params, err = imagefx.LoadParams(fs, f.params); err != nil {
			return err
		}
	}

	var thumbW, thumbH int
	if f.thumbnail != "" {
		if thumbW, thumbH, err = parseSize(f.thumbnail); err != nil {
			return err
		}
	}

	jobs, err := planJobs(inputs, effect, f.output, f.outDir)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(f.jobs)
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return processFile(fs, j, effect, params, thumbW, thumbH)
		})
	}
	return g.Wait()
}

// planJobs assigns an output path to every input. Two inputs that would
// write the same file are an error.
func planJobs(inputs []string, effect imagefx.Effect, output, outDir string) ([]job, error) {
	jobs := make([]job, len(inputs))
	owner := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := output
		if out == "" {
			dir := outDir
			if dir == "" {
				dir = filepath.Dir(in)
			}
			base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
			out = filepath.Join(dir, base+"_"+effect.String()+".png")
		}
		out = filepath.Clean(out)
		if prev, ok := owner[out]; ok {
			return nil, fmt.Errorf("%s and %s would both write %s", prev, in, out)
		}
		owner[out] = in
		jobs[i] = job{input: in, output: out}
	}
	return jobs, nil
}

func processFile(fs afero.Fs, j job, effect imagefx.Effect, params imagefx.Params, thumbW, thumbH int) error {
	start := time.Now()

	img, err := imagefx.LoadFS(fs, j.input)
	if err != nil {
		return fmt.Errorf("%s: %w", j.input, err)
	}

	out, err := imagefx.Apply(img, effect, imagefx.WithParams(params))
	if err != nil {
		return fmt.Errorf("%s: %w", j.input, err)
	}

	if thumbW > 0 {
		if out, err = imagefx.Thumbnail(out, thumbW, thumbH); err != nil {
			return fmt.Errorf("%s: %w", j.input, err)
		}
	}

	if err := imagefx.SaveFS(fs, out, j.output); err != nil {
		return fmt.Errorf("%s: %w", j.output, err)
	}

	imagefx.Logger().Info("wrote image",
		"input", j.input,
		"output", j.output,
		"effect", effect.String(),
		"size", fmt.Sprintf("%dx%d", out.Width(), out.Height()),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
