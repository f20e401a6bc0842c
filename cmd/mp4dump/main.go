// Command mp4dump parses an ISO-BMFF/MP4 file and prints its structure,
// as a JSON dump by default or an indented box tree with --tree.
package main

import (
	"fmt"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tsukikage/isobmff"
	"github.com/tsukikage/isobmff/internal/dumpconfig"
	"github.com/tsukikage/isobmff/logger"
)

var (
	flagTree    bool
	flagConfig  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "mp4dump <file.mp4>",
		Short: "Parse an ISO-BMFF file and print its box structure",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVar(&flagTree, "tree", false, "print an indented box tree instead of JSON")
	root.Flags().StringVar(&flagConfig, "config", "", "optional YAML config file")
	root.Flags().StringVar(&flagLogFile, "log-file", "", "rotate parse trace logs to this file")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log at debug level")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings := dumpconfig.Settings{Tree: flagTree, LogFile: flagLogFile}
	if flagConfig != "" {
		cfg, err := dumpconfig.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		settings, err = cfg.Unpack()
		if err != nil {
			return fmt.Errorf("unpacking config: %w", err)
		}
	}

	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(logger.Options{Stdout: settings.LogFile == "", Filename: settings.LogFile, Level: level})
	defer log.Sync()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", args[0], err)
	}

	log.Debugf("parsing %s (%d bytes)", args[0], stat.Size())
	doc, err := isobmff.Parse(f, stat.Size())
	if err != nil {
		log.Errorf("parse failed: %v", err)
		return err
	}
	if moov, err := doc.Moov.Get("moov"); err == nil {
		log.Debugf("parsed ok: %d track(s)", moov.Traks.Len())
	}

	if settings.Tree {
		printTree(doc)
		return nil
	}

	out, err := gojson.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printTree(doc isobmff.Document) {
	if ftyp, err := doc.Ftyp.Get("ftyp"); err == nil {
		fmt.Printf("ftyp major=%s minor=%s compatible=%d\n", ftyp.MajorBrand, ftyp.MinorVersion, len(ftyp.CompatibleBrands))
	}
	moov, err := doc.Moov.Get("moov")
	if err != nil {
		return
	}
	mvhd, _ := moov.Mvhd.Get("mvhd")
	fmt.Printf("moov timescale=%d duration=%d nextTrackId=%d rate=%s\n", mvhd.Timescale, mvhd.Duration, mvhd.NextTrackID, mvhd.RateString())
	for i, trak := range moov.Traks.All() {
		printTrak(i, trak)
	}
	for i, mdat := range doc.Mdat.All() {
		fmt.Printf("  mdat[%d] offset=%d size=%d\n", i, mdat.Offset, mdat.Size)
	}
}

func printTrak(i int, trak isobmff.Trak) {
	indent := "  "
	tkhd, err := trak.Tkhd.Get("tkhd")
	if err != nil {
		fmt.Printf("%strak[%d] (missing tkhd)\n", indent, i)
		return
	}
	fmt.Printf("%strak[%d] id=%d duration=%d %dx%d\n", indent, i, tkhd.TrackID, tkhd.Duration, tkhd.Width>>16, tkhd.Height>>16)

	mdia, err := trak.Mdia.Get("mdia")
	if err != nil {
		return
	}
	hdlr, _ := mdia.Hdlr.Get("hdlr")
	fmt.Printf("%s  handler=%s subtype=%s name=%q\n", indent, hdlr.HandlerType, hdlr.HandlerSubtype, hdlr.Name)

	mdhd, err := mdia.Mdhd.Get("mdhd")
	if err != nil {
		return
	}
	minf, err := mdia.Minf.Get("minf")
	if err != nil {
		return
	}
	stbl, err := minf.Stbl.Get("stbl")
	if err != nil {
		return
	}
	samples, err := isobmff.BuildSampleTable(stbl, mdhd.Timescale)
	if err != nil {
		fmt.Printf("%s  sample table: %v\n", indent, err)
		return
	}
	fmt.Printf("%s  samples=%d\n", indent, len(samples))

	stsd, _ := stbl.Stsd.Get("stsd")
	var codecs []string
	for _, e := range stsd.Entries {
		switch {
		case e.Avc1 != nil:
			if avcC, ok := e.Avc1.AvcC.Get(); ok {
				codecs = append(codecs, "avc1."+avcC.Codec)
			}
		case e.Mp4a != nil:
			if esds, ok := e.Mp4a.Esds.Get(); ok {
				codecs = append(codecs, "mp4a."+esds.Codec)
			}
		default:
			codecs = append(codecs, e.Format.String())
		}
	}
	fmt.Printf("%s  codecs=[%s]\n", indent, strings.Join(codecs, ","))
}
