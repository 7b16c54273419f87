package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kpfaulkner/dxr-go/bayer"
	"github.com/kpfaulkner/dxr-go/core"
	"github.com/kpfaulkner/dxr-go/options"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

// bench decodes each file repeatedly, optionally under the profiler.
func main() {
	count := flag.Int("n", 1, "decodes per file")
	binning := flag.Bool("binning", false, "bin all planes to mosaic resolution")
	mem := flag.Bool("mem", false, "heap profile instead of cpu")
	flag.Parse()

	var p interface{ Stop() }
	if *mem {
		p = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	} else {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer p.Stop()

	for _, file := range flag.Args() {
		fmt.Printf("file %s\n", file)
		data, err := os.ReadFile(file)
		if err != nil {
			log.Errorf("Error opening file: %v", err)
			return
		}

		start := time.Now()
		for i := 0; i < *count; i++ {
			dxr := core.NewDXRDecoder(bytes.NewReader(data), &options.DXROptions{Planes: bayer.All, Binning: *binning})
			img, err := dxr.Decode()
			if err != nil {
				log.Fatalf("boomage %v", err)
			}
			if i == 0 {
				fmt.Printf("decoded %d x %d\n", img.Width, img.Height)
			}
		}
		fmt.Printf("decoding total time %d ms\n", time.Since(start).Milliseconds())
	}
}
