package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vocabconv/internal"
	"vocabconv/internal/config"
	"vocabconv/internal/pipeline"
	"vocabconv/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "convert":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		vocab := fs.String("vocab", "", "affiliations|names|funding|awards|subjects")
		input := fs.String("input", "", "source json path")
		output := fs.String("output", "", "destination yaml path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*vocab) == "" || *input == "" || *output == "" {
			must(fmt.Errorf("--vocab --input --output are required"))
		}
		kind, err := internal.ParseVocabKind(*vocab)
		must(err)
		if kind != internal.VocabAffiliations {
			must(fmt.Errorf("%s vocabulary conversion not yet implemented", kind))
		}

		start := time.Now()
		count, err := pipeline.ConvertAffiliations(*input, *output)
		must(err)
		if cfg.RunHistory {
			_ = db.InsertRun(internal.ConversionRun{
				TraceID:    storage.NewTraceID(),
				Vocab:      string(kind),
				InputPath:  *input,
				OutputPath: *output,
				Records:    count,
				DurationMs: time.Since(start).Milliseconds(),
			})
		}
		fmt.Printf("convert done vocab=%s records=%d output=%s\n", kind, count, *output)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "source json path")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if *input == "" {
			must(fmt.Errorf("--input is required"))
		}
		if *out == "" {
			*out = filepath.Join(cfg.OutputDir, "review.xlsx")
		}
		items, err := pipeline.LoadAffiliations(*input)
		must(err)
		entries := pipeline.MapAffiliations(items)
		must(pipeline.ExportEntriesToXLSX(entries, cfg, *out))
		fmt.Printf("exported %d rows to %s\n", len(entries), *out)
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs")
		_ = fs.Parse(os.Args[2:])
		runs, err := db.ListRuns(*limit)
		must(err)
		for _, run := range runs {
			fmt.Printf("%s %s records=%d durationMs=%d %s -> %s (%s)\n",
				run.CreatedAt, run.Vocab, run.Records, run.DurationMs, run.InputPath, run.OutputPath, run.TraceID)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: vocabconv <command>")
	fmt.Println("commands:")
	fmt.Println("  convert --vocab=affiliations --input=./input.json --output=./output.yaml")
	fmt.Println("  export:xlsx --input=./input.json [--out=./out/review.xlsx]")
	fmt.Println("  runs:list [--limit=20]")
	fmt.Println("vocab must be one of: affiliations, names, funding, awards, subjects")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
