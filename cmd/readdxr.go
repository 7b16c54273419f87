package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpfaulkner/dxr-go/bundle"
	log "github.com/sirupsen/logrus"
)

// readdxr dumps a DXR header, including variants the decoder rejects.
func main() {
	infile := flag.String("i", "", "input dxr file")
	flag.Parse()

	if *infile == "" {
		fmt.Printf("input file must be specified\n")
		os.Exit(1)
	}

	f, err := os.Open(*infile)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer f.Close()

	header, err := bundle.ReadHeader(f)
	if err != nil {
		log.Fatalf("Error reading header: %v", err)
	}
	fmt.Print(header.Summary())

	if err := header.Validate(); err != nil {
		fmt.Printf("not decodable: %v\n", err)
		return
	}
	if header.Contiguous() {
		fmt.Printf("decodable, contiguous rows of %d bits\n", header.RowBits())
		return
	}
	fmt.Printf("decodable, %d bytes per row\n", header.RowStride())
}
