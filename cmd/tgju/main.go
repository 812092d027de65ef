package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tgju/internal/config"
	"tgju/internal/fetch"
	"tgju/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	client := fetch.NewClient(cfg)
	ctx := context.Background()

	cmd := os.Args[1]
	switch cmd {
	case "fetch":
		x := pipeline.NewExtractor(client, pipeline.Options{Keys: pipeline.KeyTransliterate})
		env := x.ExtractAll(ctx)
		if !env.OK() {
			must(errors.New(env.Message))
		}
		fmt.Printf("fetch done currencies=%d gold=%d coins=%d\n",
			env.Summary.TotalCurrencies, env.Summary.TotalGold, env.Summary.TotalCoins)
	case "report":
		x := pipeline.NewExtractor(client, pipeline.Options{Keys: pipeline.KeyTransliterate})
		fmt.Println(pipeline.FormatReport(x.ExtractAll(ctx)))
	case "export:json":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output json path")
		literal := fs.Bool("literal", false, "keep original-script keys")
		_ = fs.Parse(os.Args[2:])
		path := *out
		if strings.TrimSpace(path) == "" {
			path = filepath.Join(cfg.OutputDir, "tgju_data.json")
		}
		env := extractorFor(client, *literal).ExtractAll(ctx)
		must(pipeline.ExportJSON(env, path))
		fmt.Printf("export done status=%s output=%s\n", env.Status, path)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		literal := fs.Bool("literal", false, "keep original-script keys")
		_ = fs.Parse(os.Args[2:])
		path := *out
		if strings.TrimSpace(path) == "" {
			path = filepath.Join(cfg.OutputDir, "tgju_data.xlsx")
		}
		env := extractorFor(client, *literal).ExtractAll(ctx)
		must(pipeline.ExportXLSX(env, path))
		fmt.Printf("export done items=%d output=%s\n", env.Summary.TotalItems, path)
	default:
		usage()
		os.Exit(1)
	}
}

// extractorFor picks between the two pipeline variants: ASCII keys with
// strict rows, or original-script keys with padded rows.
func extractorFor(client *fetch.Client, literal bool) *pipeline.Extractor {
	opts := pipeline.Options{Keys: pipeline.KeyTransliterate}
	if literal {
		opts = pipeline.Options{Keys: pipeline.KeyLiteral, PadShortRows: true}
	}
	return pipeline.NewExtractor(client, opts)
}

func usage() {
	fmt.Println("usage: tgju <command>")
	fmt.Println("commands:")
	fmt.Println("  fetch")
	fmt.Println("  report")
	fmt.Println("  export:json [--out=./out/tgju_data.json] [--literal]")
	fmt.Println("  export:xlsx [--out=./out/tgju_data.xlsx] [--literal]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
