package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/stanza"
	"github.com/lestrrat-go/stanza/internal/cliutil"
)

type cmdopts struct {
	Encoding string `long:"encoding" description:"legacy charset assumed for non-UTF-8 text"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("stanza-lint: using stanza version %s\n", stanza.Version)
}

func showUsage() {
	fmt.Printf(`Usage : stanza-lint [options] XMLfiles ...
	Parse each file as a stanza and print its normalized serialization
	--encoding NAME : charset assumed for non-UTF-8 text (default %s)
	--version : display the version of the stanza library used
`, stanza.DefaultEncoding)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin.Fd()):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	ctx := context.Background()
	p := stanza.NewParser()
	for in := range inputCh {
		root, err := p.ParseReader(ctx, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		d := stanza.Dumper{Encoding: opts.Encoding}
		if err := d.DumpNode(os.Stdout, root); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		fmt.Println()
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return 0
}
