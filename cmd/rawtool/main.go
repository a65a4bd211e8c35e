package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vearutop/rawlinear"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "decode":
		if err := runDecode(os.Args[2:]); err != nil {
			fail(err)
		}
	case "detect":
		if err := runDetect(os.Args[2:]); err != nil {
			fail(err)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: rawtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  decode -in input.cr2 -out output.exr [-cs xyz] [-half] [-preview p.ppm] [-preview-size 512] [-v]")
	fmt.Fprintln(os.Stderr, "  decode -out-dir out -ext .f32.zst [-j 4] input1.nef input2.nef ...")
	fmt.Fprintln(os.Stderr, "  detect -in input.raw")
	fmt.Fprintln(os.Stderr, "  info   -in output.exr|output.tiff|output.f32.zst")
	fmt.Fprintln(os.Stderr, "Color spaces: raw, srgb, adobe, wide, prophoto, xyz, aces.")
	fmt.Fprintln(os.Stderr, "Output formats: .exr, .tif/.tiff, .ppm, .f32.zst.")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	inPath := fs.String("in", "", "input raw file")
	outPath := fs.String("out", "", "output file (.exr, .tiff, .ppm, .f32.zst)")
	outDir := fs.String("out-dir", "", "output directory for batch decode")
	ext := fs.String("ext", ".exr", "output extension for batch decode")
	colorSpace := fs.String("cs", "xyz", "output color space")
	halfSize := fs.Bool("half", false, "decode at half size")
	previewPath := fs.String("preview", "", "write sRGB PPM preview")
	previewSize := fs.Uint("preview-size", 512, "preview bounding box, 0 keeps full size")
	workers := fs.Int("j", 2, "concurrent decodes in batch mode")
	verbose := fs.Bool("v", false, "debug logging")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(*verbose)
	opts := func(o *rawlinear.Options) {
		o.ColorSpace = *colorSpace
		o.HalfSize = *halfSize
		o.Logger = logger
	}
	cs := rawlinear.ParseColorSpace(*colorSpace)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *inPath != "" {
		if *outPath == "" && *previewPath == "" {
			return errors.New("missing required arguments")
		}
		img, err := rawlinear.LoadRawContext(ctx, *inPath, opts)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"in":     *inPath,
			"width":  img.Width,
			"height": img.Height,
		}).Info("decoded")

		if *outPath != "" {
			if err := writeImage(*outPath, img, cs, *previewSize); err != nil {
				return err
			}
		}
		if *previewPath != "" {
			if err := writeImage(*previewPath, img, cs, *previewSize); err != nil {
				return err
			}
		}
		return nil
	}

	if *outDir == "" || fs.NArg() == 0 {
		return errors.New("missing required arguments")
	}
	if err := os.MkdirAll(filepath.Clean(*outDir), 0o755); err != nil {
		return err
	}

	var failed int
	for _, res := range rawlinear.LoadRawFiles(ctx, fs.Args(), *workers, opts) {
		if res.Err != nil {
			failed++
			logger.WithError(res.Err).WithField("in", res.Path).Error("decode failed")
			continue
		}
		base := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
		out := filepath.Join(*outDir, base+*ext)
		if err := writeImage(out, res.Image, cs, *previewSize); err != nil {
			failed++
			logger.WithError(err).WithField("out", out).Error("write failed")
			continue
		}
		logger.WithFields(logrus.Fields{
			"in":     res.Path,
			"out":    out,
			"width":  res.Image.Width,
			"height": res.Image.Height,
		}).Info("decoded")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, fs.NArg())
	}
	return nil
}

func writeImage(path string, img *rawlinear.Image, cs rawlinear.ColorSpace, previewSize uint) error {
	return rawlinear.WriteFile(path, img, func(o *rawlinear.WriteOptions) {
		o.Preview = rawlinear.PreviewOptions{
			ColorSpace: cs,
			MaxWidth:   previewSize,
			MaxHeight:  previewSize,
		}
	})
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	inPath := fs.String("in", "", "input raw file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	defer f.Close()
	format, err := rawlinear.Sniff(f)
	if err != nil {
		return err
	}
	if format == rawlinear.FormatUnknown {
		fmt.Fprintln(os.Stdout, "unknown")
		return nil
	}
	fmt.Fprintln(os.Stdout, format)
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "decoded image file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	img, err := rawlinear.ReadFile(*inPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%dx%d\n", img.Width, img.Height)
	for i, st := range rawlinear.Stats(img) {
		fmt.Fprintf(os.Stdout, "%c: min=%.6f max=%.6f mean=%.6f non-finite=%d\n",
			"RGB"[i], st.Min, st.Max, st.Mean, st.NonFinite)
	}
	return nil
}
