// Command canvasctl runs a drawing-state script against a canvas context
// and prints the resolved state wherever the script says "print".
//
//	canvasctl -f state.txt
//	echo 'translate 10 0
//	save
//	scale 2 2
//	print' | canvasctl
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/script"
)

func main() {
	var (
		file    = flag.String("f", "", "script file (default stdin)")
		verbose = flag.Bool("v", false, "log ignored arguments to stderr")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*file); err != nil {
		log.Fatal(err)
	}
}

func run(file string) error {
	var in io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	ctx := canvas.NewContext()
	defer ctx.Close()

	return script.New(ctx, os.Stdout).Run(in)
}
