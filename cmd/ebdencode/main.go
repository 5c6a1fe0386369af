// Command ebdencode transcodes a PNG, JPEG, GIF, or BMP image into an EBD
// raster and prints its markup fragments.
//
// Usage:
//
//	ebdencode [options] <input>
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/lmittmann/tint"

	"github.com/openxiino/ebd"
)

func main() {
	model := flag.String("model", "color", "color model: bw, grayscale, color")
	depth := flag.Int("depth", 4, "grayscale bit depth: 2 or 4 (ignored for bw/color)")
	compressed := flag.Bool("compressed", true, "use the compressed variant of the selected mode")
	noResize := flag.Bool("no-resize", false, "skip the device's resize contract")
	name := flag.String("name", "1", "EBDIMAGE/IMG markup name")
	alt := flag.String("alt", "", "IMG ALT text")
	output := flag.String("o", "", "write raw EBD bytes here instead of printing markup")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: ebdencode [options] <input>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *model, *depth, *compressed, *noResize, *name, *alt, *output); err != nil {
		slog.Error("encode failed", "error", err)
		os.Exit(1)
	}
}

func run(inputPath, model string, depth int, compressed, noResize bool, name, alt, output string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}
	slog.Debug("decoded source image", "path", inputPath, "format", format, "bounds", src.Bounds())

	out, err := ebd.Encode(src, ebd.ColorModel(model), depth, compressed, noResize)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	slog.Info("encoded EBD image", "mode", out.Mode, "width", out.Width, "height", out.Height, "bytes", len(out.Bytes))

	if output != "" {
		if err := os.WriteFile(output, out.Bytes, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		slog.Info("wrote raw EBD bytes", "path", output)
		return nil
	}

	fmt.Println(out.EBDIMAGEFragment(name))
	fmt.Println(out.IMGFragment(alt, "#"+name))
	return nil
}
