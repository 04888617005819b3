// Command jfifenc encodes raw RGB/RGBA pixel dumps or decodable image files
// as baseline JPEG, optionally emitting a data URI instead of binary output.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/cocosip/go-jfif-codec/codec"
	"github.com/cocosip/go-jfif-codec/jpeg/baseline"
	"github.com/cocosip/go-jfif-codec/jpeg/common"
)

type config struct {
	in       string
	out      string
	width    int
	height   int
	channels int
	quality  int
	workers  int
	dataURI  bool
	inspect  bool
	verbose  bool
	list     bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "i", "", "Input: .raw/.rgb/.rgba pixel dump (optionally .zst), or a PNG/GIF/JPEG file")
	flag.StringVar(&cfg.out, "o", "", "Output path, - for stdout")
	flag.IntVar(&cfg.width, "w", 0, "Raw input width")
	flag.IntVar(&cfg.height, "h", 0, "Raw input height")
	flag.IntVar(&cfg.channels, "c", 0, "Raw input channels (3 or 4); defaults from extension")
	flag.IntVar(&cfg.quality, "q", baseline.DefaultQuality, "Quality 1-100")
	flag.IntVar(&cfg.workers, "workers", 1, "Transform workers")
	flag.BoolVar(&cfg.dataURI, "datauri", false, "Write a data:image/jpeg;base64 URI instead of JPEG bytes")
	flag.BoolVar(&cfg.inspect, "inspect", false, "Print the marker layout of the output to stderr")
	flag.BoolVar(&cfg.verbose, "v", false, "Debug logging")
	flag.BoolVar(&cfg.list, "list", false, "List registered codecs and exit")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "jfifenc: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	if cfg.list {
		for _, c := range codec.List() {
			fmt.Printf("%-20s %s\n", c.Name(), c.UID())
		}
		return nil
	}

	if cfg.in == "" || cfg.out == "" {
		return errors.New("input and output paths must be specified")
	}

	img, err := loadInput(cfg)
	if err != nil {
		return err
	}
	logger.Debug("loaded input", "path", cfg.in, "width", img.Width, "height", img.Height, "channels", img.Channels)

	data, err := baseline.EncodeWithOptions(img, &baseline.Options{
		Quality: cfg.quality,
		Workers: cfg.workers,
		Logger:  logger,
	})
	if err != nil {
		return errors.Wrapf(err, "encode %s", cfg.in)
	}

	if cfg.inspect {
		segments, err := common.ScanMarkers(data)
		if err != nil {
			return errors.Wrap(err, "inspect output")
		}
		for _, s := range segments {
			fmt.Fprintf(os.Stderr, "%6d  %04X  len=%d\n", s.Offset, s.Marker, s.Length)
		}
	}

	out := data
	if cfg.dataURI {
		out = []byte(baseline.ToDataURI(data))
	}

	if cfg.out == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(cfg.out, out, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", cfg.out)
	}
	logger.Info("wrote", "path", cfg.out, "bytes", len(out))
	return nil
}

// loadInput reads a raw dump or decodes an image file
func loadInput(cfg config) (*baseline.Image, error) {
	name := strings.ToLower(cfg.in)
	compressed := strings.HasSuffix(name, ".zst")
	name = strings.TrimSuffix(name, ".zst")

	switch filepath.Ext(name) {
	case ".raw", ".rgb", ".rgba":
		return loadRaw(cfg, filepath.Ext(name), compressed)
	}

	file, err := os.Open(cfg.in)
	if err != nil {
		return nil, errors.Wrapf(err, "open input %s", cfg.in)
	}
	defer file.Close()

	m, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode input %s", cfg.in)
	}
	return baseline.FromImage(m)
}

func loadRaw(cfg config, ext string, compressed bool) (*baseline.Image, error) {
	channels := cfg.channels
	if channels == 0 {
		channels = 3
		if ext == ".rgba" {
			channels = 4
		}
	}

	file, err := os.Open(cfg.in)
	if err != nil {
		return nil, errors.Wrapf(err, "open input %s", cfg.in)
	}
	defer file.Close()

	var r io.Reader = file
	if compressed {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, errors.Wrap(err, "create zstd reader")
		}
		defer dec.Close()
		r = dec
	}

	pix, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %s", cfg.in)
	}

	return &baseline.Image{Pix: pix, Width: cfg.width, Height: cfg.height, Channels: channels}, nil
}
