// sdrf2mzml injects sample metadata from an SDRF annotation table into
// an mzML document streamed over stdin, writing the annotated document
// to stdout. The document's sample list is replaced with one sample per
// SDRF row whose comment[data file] matches the mzML file's first
// declared source file; all other content passes through unchanged.
// Progress and diagnostics go to stderr.
//
// Usage:
//
//	sdrf2mzml experiment.sdrf.tsv < in.mzML > out.mzML
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carbocation/proteomisc"
	_ "github.com/carbocation/proteomisc/compileinfoprint"
	"github.com/carbocation/proteomisc/mzml"
	"github.com/carbocation/proteomisc/sdrf"
)

var STDOUT = bufio.NewWriterSize(os.Stdout, 4096*32)

func main() {
	defer STDOUT.Flush()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <annotations.sdrf.tsv> < in.mzML > out.mzML\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	sdrfPath := flag.Arg(0)
	if sdrfPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	rows, err := sdrf.ReadFile(sdrfPath)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Read %d annotation rows from %s", len(rows), sdrfPath)

	groups, err := sdrf.GroupByDataFile(rows)
	if err != nil {
		log.Fatalln(err)
	}

	in, err := proteomisc.MaybeDecompressReader(os.Stdin)
	if err != nil {
		log.Fatalln(err)
	}

	r, err := mzml.NewReader(in)
	if err != nil {
		log.Fatalln(err)
	}

	p := &Patcher{Groups: groups}
	if err := p.Patch(r, mzml.NewWriter(STDOUT)); err != nil {
		log.Fatalln(err)
	}
}
