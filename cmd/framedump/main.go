package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/s0up4200/go-eac3fix/internal/codec"
	"github.com/s0up4200/go-eac3fix/internal/frame"
)

func main() {
	in := flag.String("in", "", "path to raw AC-3/E-AC-3 stream")
	limit := flag.Int("n", 0, "stop after this many frames (0 = all)")
	flag.Parse()
	if *in == "" {
		log.Fatal("-in required")
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer f.Close()

	r := frame.NewReader(f)
	count := 0
	for {
		fr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("frame %d: %v", count+1, err)
		}
		count++

		switch fr.Kind {
		case frame.KindAC3:
			fmt.Printf("#%06d %-7s len=%d\n", count, fr.Kind, len(fr.Data))
		case frame.KindEAC3:
			info := codec.ParseBSI(fr.Data)
			fmt.Printf("#%06d %-7s len=%d strmtyp=%d compre@%d scan@%d\n",
				count, fr.Kind, len(fr.Data), info.StreamType, info.ComprePos, info.ScanStart)
		}
		if *limit > 0 && count >= *limit {
			break
		}
	}
	fmt.Printf("total frames: %d (%d bytes)\n", count, r.BytesRead())
}
