package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/zephyrtronium/fnplot"
)

func main() {
	log.SetFlags(0)
	var (
		verb        string
		w, h, j     int
		table, echo bool
		verbose     bool
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] equation lower:step:upper\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&verb, "fmt", "%g", "number formatting string for -table")
	flag.IntVar(&w, "w", 0, "plot width in columns (default terminal width)")
	flag.IntVar(&h, "h", 0, "plot height in rows (default terminal height)")
	flag.IntVar(&j, "j", 1, "number of goroutines evaluating points")
	flag.BoolVar(&table, "table", false, "print x and y columns instead of plotting")
	flag.BoolVar(&echo, "echo", false, "print the postfix form of the equation")
	flag.BoolVar(&verbose, "v", false, "log debug information")
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatal("missing equation argument")
	}
	if flag.NArg() < 2 {
		log.Fatal("missing domain argument")
	}
	if j < 1 {
		log.Fatalf("worker count (%d) must be positive", j)
	}
	equation, domain := flag.Arg(0), flag.Arg(1)

	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})

	if echo {
		toks, err := fnplot.ScanString(equation)
		if err != nil {
			log.Fatal(err)
		}
		postfix, err := fnplot.ToPostfix(toks)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(fnplot.FormatPostfix(postfix))
	}

	dom, img, err := fnplot.Sample(equation, domain, fnplot.Workers(j), fnplot.Logger(handler))
	if err != nil {
		log.Fatal(err)
	}

	if table {
		verb = verb + " " + verb + "\n"
		for i, x := range dom {
			fmt.Printf(verb, x, img[i])
		}
		return
	}
	w, h = termSize(w, h)
	if w < 1 || h < 1 {
		log.Fatalf("plot size %dx%d is too small", w, h)
	}
	if _, err := plot(dom, img, w, h).WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// termSize fills in zero dimensions from the terminal size, then from the
// COLUMNS and LINES environment variables, then 80x24. The height leaves a
// line for the shell prompt.
func termSize(w, h int) (int, int) {
	if w != 0 && h != 0 {
		return w, h
	}
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		tw, th = envInt("COLUMNS", 80), envInt("LINES", 24)
	}
	if w == 0 {
		w = tw
	}
	if h == 0 {
		h = th - 1
	}
	return w, h
}

func envInt(name string, def int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
