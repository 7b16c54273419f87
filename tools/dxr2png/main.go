package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kpfaulkner/dxr-go/bayer"
	"github.com/kpfaulkner/dxr-go/core"
	"github.com/kpfaulkner/dxr-go/options"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

const usage = "usage: dxr2png [--no-binning] filename [R,Gr,Gb,B]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("dxr2png", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(stdout, usage)
		fs.PrintDefaults()
	}
	noBinning := fs.Bool("no-binning", false, "keep every sample position, zero filling unselected planes")
	formatName := fs.String("format", "png", "output format: png, tiff, bmp or pgm")
	profileMode := fs.String("profile", "", "write a cpu or mem profile to the current directory")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if fs.NArg() < 1 {
		log.Errorf("no file specified")
		return 1
	}
	if fs.NArg() > 2 {
		log.Errorf("too many arguments (try --help)")
		return 1
	}

	opts := &options.DXROptions{Binning: !*noBinning}
	if fs.NArg() < 2 {
		log.Infof("no plane [R,Gr,Gb,B] specified, extracting all planes")
		opts.Planes = bayer.All
		opts.Binning = false
	} else {
		planes, err := bayer.ParsePlane(fs.Arg(1))
		if err != nil {
			log.Errorf("%v", err)
			return 1
		}
		opts.Planes = planes
	}
	opts.WithDebug(*verbose)

	format, err := core.ParseOutputFormat(*formatName)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	infile := fs.Arg(0)
	outfile, err := core.OutputPath(infile, opts.Planes, format.Extension())
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileHeap, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		log.Errorf("unknown profile mode %q", *profileMode)
		return 1
	}

	f, err := os.Open(infile)
	if err != nil {
		log.Errorf("Error opening file: %v", err)
		return 1
	}
	defer f.Close()

	dxr := core.NewDXRDecoder(f, opts)
	header, err := dxr.GetHeader()
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	fmt.Fprint(stdout, header.Summary())

	start := time.Now()
	dxrImage, err := dxr.Decode()
	if err != nil {
		log.Errorf("Error decoding: %v", err)
		return 1
	}
	log.Debugf("decoding took %d ms", time.Since(start).Milliseconds())

	fmt.Fprintf(stdout, "Saving to %s...\n", outfile)

	// encode fully in memory so a failed encode leaves no partial file behind
	buf := new(bytes.Buffer)
	if err := core.WriteImage(dxrImage, buf, format); err != nil {
		log.Errorf("Error encoding: %v", err)
		return 1
	}
	if err := os.WriteFile(outfile, buf.Bytes(), 0666); err != nil {
		log.Errorf("Error writing %s: %v", outfile, err)
		return 1
	}
	return 0
}
