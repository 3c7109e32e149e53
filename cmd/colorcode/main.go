// Command colorcode renders the color-separation effect for an image.
//
// Usage:
//
//	colorcode [flags] <image> <levels> <version> [schedule]
//
// Every stage of both color spaces is written next to the image (or into
// -out) as <image>-<version>-tri-<level>-<stage>.<ext>.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/colorcode"
)

const usageLine = "usage: colorcode [flags] <image> <levels> <version> [schedule]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	out      string
	format   string
	archive  string
	jitter   bool
	seed     uint64
	maxWidth int
	center   bool
	verbose  bool
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("colorcode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.out, "out", "", "output directory (default: the image's directory)")
	fs.StringVar(&cfg.format, "format", "png", "output format: png, jpeg, bmp or tiff")
	fs.StringVar(&cfg.archive, "archive", "", "write every stage into this .tar.zst file instead of a directory")
	fs.BoolVar(&cfg.jitter, "jitter", false, "shift pixelation blocks by random per-band offsets")
	fs.Uint64Var(&cfg.seed, "seed", 0, "jitter seed (0 picks one at random)")
	fs.IntVar(&cfg.maxWidth, "max-width", 0, "downscale wider images to this width first")
	fs.BoolVar(&cfg.center, "center", false, "add the center-masked layer under the channels")
	fs.BoolVar(&cfg.verbose, "v", false, "log per-stage timings")
	fs.Usage = func() { usage(fs, fs.Output()) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	rest := fs.Args()
	if len(rest) == 1 && rest[0] == "help" {
		usage(fs, stdout)
		return 0
	}
	if len(rest) < 3 {
		fmt.Fprintln(stderr, usageLine)
		fmt.Fprintln(stderr, "run 'colorcode help' for details")
		return 0
	}

	if err := render(cfg, rest, stdout, stderr); err != nil {
		if errors.Is(err, colorcode.ErrResolutionTooFine) {
			fmt.Fprintf(stderr, "colorcode: %v; nothing written\n", err)
			return 0
		}
		fmt.Fprintf(stderr, "colorcode: %v\n", err)
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  image     input raster (png, jpeg, gif, bmp, tiff or webp)")
	fmt.Fprintln(w, "  levels    number of levels to request")
	fmt.Fprintln(w, "  version   tag embedded in every output name")
	fmt.Fprintln(w, "  schedule  primes (default), powers or single")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func render(cfg config, args []string, stdout, stderr io.Writer) error {
	path, version := args[0], args[2]

	levels, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(err, "level count %q", args[1])
	}
	schedule := colorcode.SchedulePrimes
	if len(args) > 3 {
		if schedule, err = colorcode.ParseSchedule(args[3]); err != nil {
			return err
		}
	}
	format, err := colorcode.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	colorcode.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer colorcode.SetLogger(nil)

	src, err := colorcode.Load(path)
	if err != nil {
		return errors.Wrap(err, "load input")
	}
	width, height := src.Width(), src.Height()
	if cfg.maxWidth > 0 && width > cfg.maxWidth {
		src = colorcode.Downscale(src, cfg.maxWidth)
		colorcode.Logger().Info("input downscaled",
			"from", fmt.Sprintf("%dx%d", width, height),
			"to", fmt.Sprintf("%dx%d", src.Width(), src.Height()))
	}

	sink, closeSink, err := openSink(cfg, path, format)
	if err != nil {
		return err
	}

	base := filepath.Base(strings.TrimSuffix(path, filepath.Ext(path)))
	opts := []colorcode.Option{
		colorcode.WithLevels(levels),
		colorcode.WithSchedule(schedule),
		colorcode.WithSink(sink),
		colorcode.WithNames(base, version),
		colorcode.WithCenterLayer(cfg.center),
	}
	if cfg.jitter {
		seed := cfg.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		fmt.Fprintf(stdout, "jitter seed %d\n", seed)
		opts = append(opts, colorcode.WithJitter(rand.NewPCG(seed, seed)))
	}

	results, runErr := colorcode.New(opts...).RunAll(src)
	if err := closeSink(); err != nil && runErr == nil {
		runErr = errors.Wrap(err, "close output")
	}
	if runErr != nil {
		return runErr
	}

	summarize(stdout, path, src, results)
	return nil
}

// openSink returns the sink selected by cfg and a function that flushes
// and closes it.
func openSink(cfg config, path string, f colorcode.Format) (colorcode.Sink, func() error, error) {
	if cfg.archive == "" {
		dir := cfg.out
		if dir == "" {
			dir = filepath.Dir(path)
		}
		sink, err := colorcode.NewDirSink(dir, f)
		if err != nil {
			return nil, nil, err
		}
		return sink, sink.Close, nil
	}

	file, err := os.Create(filepath.Clean(cfg.archive))
	if err != nil {
		return nil, nil, errors.Wrap(err, "create archive")
	}
	sink, err := colorcode.NewArchiveSink(file, f)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	closeAll := func() error {
		if err := sink.Close(); err != nil {
			_ = file.Close()
			return err
		}
		return file.Close()
	}
	return sink, closeAll, nil
}

func summarize(w io.Writer, path string, src *colorcode.Buffer, results map[colorcode.Space]*colorcode.Result) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s: %d x %d, %d pixels\n", path, src.Width(), src.Height(), src.Width()*src.Height())
	for _, s := range colorcode.Spaces {
		res, ok := results[s]
		if !ok {
			continue
		}
		sizes := make([]string, len(res.Levels))
		for i, lv := range res.Levels {
			sizes[i] = strconv.Itoa(lv.Size)
		}
		p.Fprintf(w, "  %s: %d levels (block %s), %d stages\n", s, len(res.Levels), strings.Join(sizes, "/"), len(res.Stages))
	}
}
