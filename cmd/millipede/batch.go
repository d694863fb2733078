package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/gosuri/uiprogress"
	"golang.org/x/sync/errgroup"

	"github.com/SubhashUFlorida/millipede-bar/internal/tableio"
	"github.com/SubhashUFlorida/millipede-bar/junction"
	"github.com/SubhashUFlorida/millipede-bar/waveform"
)

// fileResult is the evaluation of one incident file.
type fileResult struct {
	path   string
	output string // result file, empty unless written
	series waveform.Series
	result *junction.Result
}

type batch struct {
	params    junction.Parameters
	opts      options
	logger    *log.Logger
	modelOpts []junction.Option
}

// run evaluates every incident file, at most opts.workers at a time. The
// returned results keep the order of opts.incidents. The first failure
// cancels the files not yet started; files already started run to the end.
func (b *batch) run(ctx context.Context, progressOut io.Writer) ([]fileResult, error) {
	paths := b.opts.incidents
	results := make([]fileResult, len(paths))

	var bar *uiprogress.Bar
	if b.opts.progress && len(paths) > 1 {
		p := uiprogress.New()
		p.SetOut(progressOut)
		bar = p.AddBar(len(paths)).AppendCompleted().PrependElapsed()
		p.Start()
		defer p.Stop()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := b.evaluate(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			if bar != nil {
				bar.Incr()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// evaluate runs the full pipeline for one incident file.
func (b *batch) evaluate(path string) (fileResult, error) {
	rows, err := tableio.ReadIncident(path)
	if err != nil {
		return fileResult{}, err
	}

	series, err := waveform.PrepareRows(rows)
	if err != nil {
		return fileResult{}, err
	}

	res, err := junction.Evaluate(series, b.params, b.modelOpts...)
	if err != nil {
		return fileResult{}, err
	}

	if b.opts.verbose {
		c := res.Constants
		b.logger.Printf("%s: %d samples, dt=%g s, c=%.2f m/s, Tch=%g s, delay=%d samples (%g s)",
			path, series.Len(), c.Interval, c.WaveSpeed, c.CharacteristicTime, c.DelaySteps, c.Delay())
	}

	fr := fileResult{path: path, series: series, result: res}
	if b.opts.write {
		fr.output = tableio.OutputPath(path, b.opts.format)
		if err := tableio.Write(fr.output, res.Rows); err != nil {
			return fileResult{}, err
		}
	}
	return fr, nil
}
