package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/h3tc/internal/config"
	"github.com/cory-johannsen/h3tc/internal/convert"
	"github.com/cory-johannsen/h3tc/internal/format"
	"github.com/cory-johannsen/h3tc/internal/observability"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "convert-batch":
		err = runConvertBatch(os.Args[2:])
	case "detect":
		err = runDetect(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: h3tc <command> [flags]

commands:
  convert        convert one template file between formats
  convert-batch  convert every template in a directory
  detect         print the detected format of a file
  inspect        print a YAML summary of a template file`)
}

func loadConfig(path string) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	in := fs.String("in", "", "input template file")
	out := fs.String("out", "", "output template file")
	from := fs.String("from", "", "input format: sod, hota, hota18 (auto-detected if omitted)")
	to := fs.String("to", "", "output format: sod, hota, hota18")
	packName := fs.String("pack-name", "", "pack name for legacy-to-extended upgrades")
	legacyPadding := fs.Bool("legacy-padding", false, "pad SOD output to 183 columns like the original game editor")
	configPath := fs.String("config", "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("usage: h3tc convert -in <file> -out <file> -to <format> [-from <format>] [-pack-name <name>] [-legacy-padding]")
	}

	cfg, logger, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	target := *to
	if target == "" {
		target = cfg.Convert.DefaultTarget
	}
	if target == "" {
		return fmt.Errorf("no output format: pass -to or set convert.default_target")
	}
	toID, err := schema.ParseID(target)
	if err != nil {
		return err
	}

	name := *packName
	if name == "" {
		name = cfg.Convert.PackName
	}
	opts := format.WriteOptions{LegacyPadding: *legacyPadding || cfg.Convert.LegacyPadding}

	if err := convertFile(logger, *in, *out, *from, toID, name, opts); err != nil {
		return err
	}
	logger.Info("wrote template", zap.String("path", *out), zap.String("format", string(toID)))
	return nil
}

func convertFile(logger *zap.Logger, in, out, from string, to schema.ID, packName string, opts format.WriteOptions) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	var fromID schema.ID
	if from == "" {
		fromID, err = format.Detect(data)
		if err != nil {
			return fmt.Errorf("detecting format of %s: %w", in, err)
		}
		logger.Debug("detected format", zap.String("path", in), zap.String("format", string(fromID)))
	} else {
		fromID, err = schema.ParseID(from)
		if err != nil {
			return err
		}
	}

	pack, err := format.Parse(fromID, data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", in, err)
	}
	if pack.Name == "" {
		pack.Name = fileStem(in)
	}
	if packName != "" {
		pack.Name = packName
	}

	pack = convert.Convert(pack, fromID, to)

	output, err := format.Write(to, pack, opts)
	if err != nil {
		return fmt.Errorf("writing %s template: %w", to.Name(), err)
	}
	if err := os.WriteFile(out, output, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

func runConvertBatch(args []string) error {
	fs := flag.NewFlagSet("convert-batch", flag.ExitOnError)
	inDir := fs.String("in-dir", "", "directory of input template files")
	outDir := fs.String("out-dir", "", "directory for converted output")
	to := fs.String("to", "", "output format: sod, hota, hota18")
	legacyPadding := fs.Bool("legacy-padding", false, "pad SOD output to 183 columns like the original game editor")
	configPath := fs.String("config", "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inDir == "" || *outDir == "" || *to == "" {
		return fmt.Errorf("usage: h3tc convert-batch -in-dir <dir> -out-dir <dir> -to <format>")
	}

	cfg, logger, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	toID, err := schema.ParseID(*to)
	if err != nil {
		return err
	}
	opts := format.WriteOptions{LegacyPadding: *legacyPadding || cfg.Convert.LegacyPadding}

	entries, err := os.ReadDir(*inDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *inDir, err)
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", *outDir, err)
	}

	// The engine is stateless, so independent files convert in parallel.
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), ".h3tc-layout.json") {
			continue
		}
		in := filepath.Join(*inDir, entry.Name())
		out := filepath.Join(*outDir, outputName(entry.Name(), toID))
		g.Go(func() error {
			if err := convertFile(logger, in, out, "", toID, "", opts); err != nil {
				return err
			}
			logger.Info("converted", zap.String("in", in), zap.String("out", out))
			return nil
		})
	}
	return g.Wait()
}

// outputName swaps the extension for the target format's conventional one:
// .txt for legacy packs, .h3t for extended.
func outputName(name string, to schema.ID) string {
	ext := ".h3t"
	if to == schema.SOD {
		ext = ".txt"
	}
	return fileStem(name) + ext
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	in := fs.String("in", "", "template file to inspect")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("usage: h3tc detect -in <file>")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *in, err)
	}
	id, err := format.Detect(data)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", id, id.Name())
	return nil
}

type mapSummary struct {
	Name        string `yaml:"name"`
	MinSize     string `yaml:"min_size,omitempty"`
	MaxSize     string `yaml:"max_size,omitempty"`
	Zones       int    `yaml:"zones"`
	Connections int    `yaml:"connections"`
}

type packSummary struct {
	Format      string       `yaml:"format"`
	Pack        string       `yaml:"pack,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Maps        []mapSummary `yaml:"maps"`
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	in := fs.String("in", "", "template file to summarise")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("usage: h3tc inspect -in <file>")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *in, err)
	}
	id, err := format.Detect(data)
	if err != nil {
		return err
	}
	pack, err := format.Parse(id, data)
	if err != nil {
		return err
	}

	summary := packSummary{Format: string(id), Pack: pack.Name}
	if pack.Metadata != nil {
		summary.Description = pack.Metadata.Description
	}
	for _, m := range pack.Maps {
		summary.Maps = append(summary.Maps, mapSummary{
			Name:        m.Name,
			MinSize:     m.MinSize,
			MaxSize:     m.MaxSize,
			Zones:       len(m.Zones),
			Connections: len(m.Connections),
		})
	}

	out, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("serialising summary: %w", err)
	}
	os.Stdout.Write(out)
	return nil
}
