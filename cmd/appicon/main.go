// appicon — BuyRight application icon generator.
//
// Usage:
//
//	appicon [-o <file>] [--mode replace|blend] [--sizes <list>|default] [--dir <path>] [--preview <file>]
//	appicon serve [--port 8080]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/buyright/appicon/clients/server"
	"github.com/buyright/appicon/pkg/canvas"
	"github.com/buyright/appicon/pkg/generator"
	"github.com/buyright/appicon/pkg/icon"
	"github.com/buyright/appicon/pkg/preview"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "serve":
			if err := server.RunServe(args[1:]); err != nil {
				fatal(err)
			}
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	// Default: generate mode. The size verdict is printed but never turned
	// into an exit status.
	if err := run(args, os.Stdout); err != nil {
		fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("appicon", flag.ContinueOnError)

	var (
		output      string
		modeName    string
		sizesArg    string
		dir         string
		previewPath string
	)

	fs.StringVar(&output, "o", generator.DefaultOutput, "Output PNG path")
	fs.StringVar(&output, "output", generator.DefaultOutput, "Output PNG path")
	fs.StringVar(&modeName, "mode", "replace", "Compositing: replace or blend")
	fs.StringVar(&sizesArg, "sizes", "", "Extra sizes to export, comma separated, or 'default'")
	fs.StringVar(&dir, "dir", ".", "Directory for sized variants")
	fs.StringVar(&previewPath, "preview", "", "Write a contact sheet of the variants to this path")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	mode, err := canvas.ParseMode(modeName)
	if err != nil {
		return err
	}
	sizes, err := generator.ParseSizes(sizesArg)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Creating BuyRight app icon...")
	img := icon.Render(icon.Options{Mode: mode})

	rep, err := generator.Export(output, img, generator.Options{})
	if err != nil {
		return err
	}
	rep.Print(stdout)

	if len(sizes) > 0 {
		reps, err := generator.ExportSet(dir, img, sizes, generator.Options{})
		if err != nil {
			return err
		}
		for _, r := range reps {
			fmt.Fprintf(stdout, "Variant %s: %d bytes\n", r.Path, r.Bytes)
		}
	}

	if previewPath != "" {
		if err := writePreview(previewPath, img, sizes); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Preview saved as %s\n", previewPath)
	}
	return nil
}

func writePreview(path string, master image.Image, sizes []int) error {
	if len(sizes) == 0 {
		sizes = generator.DefaultSizes
	}
	images := make([]image.Image, len(sizes))
	for i, size := range sizes {
		images[i] = generator.Scale(master, size)
	}

	sheet, err := preview.Render(images, preview.Options{})
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if _, err := generator.Export(path, sheet, generator.Options{}); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`appicon — BuyRight App Icon Generator

USAGE:
    appicon [options]
    appicon serve [--port 8080] [--mode replace|blend] [--no-browser]

GENERATE:
    -o, --output <path>    Output PNG (default: app-icon-512.png)
    --mode <name>          replace (default) or blend
    --sizes <list>         Extra sizes, e.g. 72,192,512 or 'default'
    --dir <path>           Directory for sized variants (default: .)
    --preview <path>       Contact sheet of the variants

PREVIEW SERVER:
    appicon serve                       Start the preview UI

EXAMPLES:
    appicon
    appicon --sizes default --dir public/icons
    appicon --mode blend -o icon-blend.png
    appicon --sizes 192,512 --preview sheet.png
`)
}
