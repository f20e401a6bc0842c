// Command mp4probe prints per-track codec, duration and sample-table
// statistics for an MP4 file, deriving every track's sample table
// concurrently.
package main

import (
	"fmt"
	"os"

	"github.com/tsukikage/isobmff"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.mp4>\n", os.Args[0])
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	doc, err := isobmff.Parse(f, stat.Size())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	moov, err := doc.Moov.Get("moov")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tables, err := isobmff.BuildAllSampleTables(moov)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i, trak := range moov.Traks.All() {
		printTrack(i, trak, tables[i])
	}
}

func printTrack(i int, trak isobmff.Trak, samples []isobmff.Sample) {
	mdia, err := trak.Mdia.Get("mdia")
	if err != nil {
		fmt.Printf("Track %d: (missing mdia)\n\n", i)
		return
	}
	mdhd, err := mdia.Mdhd.Get("mdhd")
	if err != nil {
		fmt.Printf("Track %d: (missing mdhd)\n\n", i)
		return
	}

	codec := trackCodec(mdia)
	fmt.Printf("Track %d: %s\n", i, codec)
	fmt.Printf("  Total samples: %d\n", len(samples))
	fmt.Printf("  TimeScale: %d\n", mdhd.Timescale)
	if mdhd.Timescale != 0 {
		fmt.Printf("  Duration: %.2fs\n", float64(mdhd.Duration)/float64(mdhd.Timescale))
	}

	var totalBytes uint64
	for _, s := range samples {
		totalBytes += uint64(s.Size)
	}
	fmt.Printf("  Total bytes: %d\n\n", totalBytes)
}

func trackCodec(mdia isobmff.Mdia) string {
	minf, err := mdia.Minf.Get("minf")
	if err != nil {
		return "unknown"
	}
	stbl, err := minf.Stbl.Get("stbl")
	if err != nil {
		return "unknown"
	}
	stsd, err := stbl.Stsd.Get("stsd")
	if err != nil || len(stsd.Entries) == 0 {
		return "unknown"
	}
	e := stsd.Entries[0]
	switch {
	case e.Avc1 != nil:
		if avcC, ok := e.Avc1.AvcC.Get(); ok && avcC.Codec != "" {
			return "avc1." + avcC.Codec
		}
		return "avc1"
	case e.Mp4a != nil:
		if esds, ok := e.Mp4a.Esds.Get(); ok && esds.Codec != "" {
			return "mp4a." + esds.Codec
		}
		return "mp4a"
	default:
		return e.Format.String()
	}
}
