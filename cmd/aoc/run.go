package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/cache"
	"github.com/katalvlaran/aoc2021/puzzle"
)

type runFlags struct {
	input      string
	iterations int
	workers    int
	json       bool
	noCache    bool
	render     bool
}

// result is one printed answer; it is also the --json schema.
type result struct {
	Day       int     `json:"day"`
	Part      int     `json:"part"`
	Answer    string  `json:"answer"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Cached    bool    `json:"cached"`
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <day> [part]",
		Short: "Solve one day, or one part of it",
		Long: `Solve a day's puzzle. Without a part, every registered part runs.

The input defaults to <input_dir>/dayNN.txt.

Examples:
  aoc run 1
  aoc run 14 2 --iterations 20
  aoc run 17 --workers 8 --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), args, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Puzzle input file")
	cmd.Flags().IntVar(&f.iterations, "iterations", 0, "Override the day's step count")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Worker goroutines for parallel days (default from config)")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print one JSON record per part")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "Bypass the answer cache")
	cmd.Flags().BoolVar(&f.render, "render", false, "Print a drawing where the day supports one")
	return cmd
}

func parseDayPart(args []string) (day int, parts []int, err error) {
	day, err = strconv.Atoi(args[0])
	if err != nil || day < puzzle.FirstDay || day > puzzle.LastDay {
		return 0, nil, fmt.Errorf("%w: day %q", puzzle.ErrBadKey, args[0])
	}
	if len(args) == 2 {
		part, err := strconv.Atoi(args[1])
		if err != nil || part < 1 || part > puzzle.MaxPart {
			return 0, nil, fmt.Errorf("%w: part %q", puzzle.ErrBadKey, args[1])
		}
		return day, []int{part}, nil
	}
	parts = puzzle.Parts(day)
	if len(parts) == 0 {
		return 0, nil, fmt.Errorf("%w: day %d", puzzle.ErrNotRegistered, day)
	}
	return day, parts, nil
}

func (a *app) run(ctx context.Context, out io.Writer, args []string, f runFlags) error {
	day, parts, err := parseDayPart(args)
	if err != nil {
		return err
	}

	path := f.input
	if path == "" {
		path = filepath.Join(a.cfg.InputDir, fmt.Sprintf("day%02d.txt", day))
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts := puzzle.Options{Iterations: f.iterations, Workers: a.cfg.Workers, Render: f.render}
	if f.workers > 0 {
		opts.Workers = f.workers
	}

	// Non-default options change the answer, so only plain runs are cached.
	var store cache.Store
	if !f.noCache && opts.Iterations == 0 && !opts.Render {
		store = a.openCache(ctx)
		if c, ok := store.(io.Closer); ok {
			defer c.Close()
		}
	}

	for _, part := range parts {
		res, err := solve(ctx, store, day, part, input, opts)
		if err != nil {
			return fmt.Errorf("day %d part %d: %w", day, part, err)
		}
		if err := writeResult(out, res, f.json); err != nil {
			return err
		}
	}
	return nil
}

// openCache returns the configured store, or nil when caching is disabled
// or the backend cannot be opened. Without a Redis URL answers are kept
// as files under the cache directory.
func (a *app) openCache(ctx context.Context) cache.Store {
	cc := a.cfg.Cache
	if !cc.Enabled {
		return nil
	}
	var (
		store cache.Store
		err   error
	)
	if cc.RedisURL == "" {
		store, err = cache.NewFileStore(cc.Dir, cc.TTL)
	} else {
		store, err = cache.NewRedisStore(ctx, cc.RedisURL, cc.Prefix, cc.TTL)
	}
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("answer cache unavailable, continuing without it")
		return nil
	}
	return store
}

func solve(ctx context.Context, store cache.Store, day, part int, input []byte, opts puzzle.Options) (result, error) {
	log := zerolog.Ctx(ctx).With().Int("day", day).Int("part", part).Logger()
	key := cache.Key(day, part, input)

	if store != nil {
		rec, ok, err := store.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("cache lookup failed")
		case ok:
			log.Debug().Msg("answer served from cache")
			return result{Day: day, Part: part, Answer: rec.Answer, ElapsedMS: rec.ElapsedMS, Cached: true}, nil
		}
	}

	fn, err := puzzle.Lookup(day, part)
	if err != nil {
		return result{}, err
	}
	start := time.Now()
	ans, err := fn(log.WithContext(ctx), input, opts)
	if err != nil {
		return result{}, err
	}
	res := result{
		Day:       day,
		Part:      part,
		Answer:    fmt.Sprint(ans),
		ElapsedMS: float64(time.Since(start).Microseconds()) / 1000,
	}
	log.Info().Float64("elapsed_ms", res.ElapsedMS).Msg("solved")

	if store != nil {
		rec := cache.Record{Day: day, Part: part, Answer: res.Answer, ElapsedMS: res.ElapsedMS}
		if err := store.Set(ctx, key, rec); err != nil {
			log.Warn().Err(err).Msg("cache store failed")
		}
	}
	return res, nil
}

var errWrite = errors.New("failed to write result")

func writeResult(out io.Writer, r result, asJSON bool) error {
	var err error
	if asJSON {
		var b []byte
		if b, err = sonic.Marshal(r); err == nil {
			_, err = fmt.Fprintf(out, "%s\n", b)
		}
	} else {
		key := puzzle.Key{Day: r.Day, Part: r.Part}
		sep := " "
		if strings.Contains(r.Answer, "\n") {
			sep = "\n"
		}
		_, err = fmt.Fprintf(out, "%s:%s%s\n", key, sep, r.Answer)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}
	return nil
}
