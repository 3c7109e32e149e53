// Command ccfilter applies one of the standalone filters to an image.
//
// Usage:
//
//	ccfilter [flags] <command> <image> [arg]
//
// Commands:
//
//	separate-rgb     write outR, outG and outB, each one isolated primary
//	separate-cmy     write outC, outM and outY
//	checker          add a white/black checkerboard
//	pixelate <size>  point-sampled pixelation
//	edges            grayscale followed by a 5x5 Gaussian
//	saturation       HSL saturation as a grayscale map
//	blur <radius>    Gaussian blur (-box uses a box kernel of odd size)
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

	"github.com/gogpu/colorcode"
	"github.com/gogpu/colorcode/internal/filter"
	"github.com/gogpu/colorcode/internal/image"
	"github.com/gogpu/colorcode/internal/output"
)

const usageLine = "usage: ccfilter [flags] <separate-rgb|separate-cmy|checker|pixelate|edges|saturation|blur> <image> [arg]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	out     string
	format  string
	seed    uint64
	box     bool
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("ccfilter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.out, "out", ".", "output directory")
	fs.StringVar(&cfg.format, "format", "png", "output format: png, jpeg, bmp or tiff")
	fs.Uint64Var(&cfg.seed, "seed", 0, "pixelate with per-band offsets drawn from this seed")
	fs.BoolVar(&cfg.box, "box", false, "blur with a box kernel of side <radius>")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usageLine)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	rest := fs.Args()
	if len(rest) == 1 && rest[0] == "help" {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}
	if len(rest) < 2 {
		fmt.Fprintln(stderr, usageLine)
		return 0
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	written, err := apply(cfg, rest, log)
	if err != nil {
		fmt.Fprintf(stderr, "ccfilter: %v\n", err)
		return 1
	}
	for _, p := range written {
		fmt.Fprintln(stdout, p)
	}
	return 0
}

// apply runs one filter command and returns the written paths.
func apply(cfg config, args []string, log *slog.Logger) ([]string, error) {
	cmd, path := args[0], args[1]
	arg := func() (int, error) {
		if len(args) < 3 {
			return 0, errors.Errorf("%s needs a numeric argument", cmd)
		}
		n, err := strconv.Atoi(args[2])
		return n, errors.Wrapf(err, "%s argument %q", cmd, args[2])
	}

	format, err := image.ParseFormat(cfg.format)
	if err != nil {
		return nil, err
	}
	src, err := image.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "load input")
	}
	sink, err := output.NewDirSink(cfg.out, format)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(strings.TrimSuffix(path, filepath.Ext(path)))

	switch cmd {
	case "separate-rgb":
		err = separate(sink, src, colorcode.SpaceRGB)
	case "separate-cmy":
		err = separate(sink, src, colorcode.SpaceCMY)
	case "checker":
		filter.Checker(src)
		err = sink.Write(base+"-checker", src)
	case "pixelate":
		var size int
		if size, err = arg(); err != nil {
			break
		}
		if cfg.seed != 0 {
			var offsets *image.Offsets
			offsets, err = filter.PixelateOffset(src, size, rand.NewPCG(cfg.seed, cfg.seed))
			if err == nil {
				log.Debug("offset pixelation", "size", size, "shifts", offsets.Values())
			}
		} else {
			err = filter.Pixelate(src, size)
		}
		if err == nil {
			err = sink.Write(fmt.Sprintf("%s-pixelate-%d", base, size), src)
		}
	case "edges":
		filter.Grayscale(src)
		if err = filter.Convolve(src, filter.GaussianKernel5()); err == nil {
			err = sink.Write(base+"-edges", src)
		}
	case "saturation":
		filter.Saturation(src)
		err = sink.Write(base+"-saturation", src)
	case "blur":
		var radius int
		if radius, err = arg(); err != nil {
			break
		}
		kernel := filter.CachedGaussianKernel(float64(radius))
		if cfg.box {
			kernel = filter.BoxKernel(radius)
		}
		if err = filter.Convolve(src, kernel); err == nil {
			err = sink.Write(fmt.Sprintf("%s-blur-%d", base, radius), src)
		}
	default:
		return nil, errors.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return nil, err
	}
	log.Info("filter applied", "command", cmd, "width", src.Width(), "height", src.Height())
	return sink.Paths(), sink.Close()
}

// separate writes one isolated copy of src per channel of s, named
// out<channel>.
func separate(sink output.Sink, src *image.Buffer, s colorcode.Space) error {
	for _, ch := range filter.ChannelsFor(s) {
		buf := src.Clone()
		filter.Isolate(buf, ch)
		if err := sink.Write("out"+ch.String(), buf); err != nil {
			return err
		}
	}
	return nil
}
