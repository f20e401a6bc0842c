package isobmff

import "golang.org/x/sync/errgroup"

// Sample is one decodable unit located in the file: Offset/Size locate its
// bytes (readable via Mdat.Reader plus a further SeekFromStart/SetLimit),
// Duration is its decode duration in seconds (the run's sample_duration
// divided by the track's own Mdhd time_scale).
type Sample struct {
	Offset   int64
	Size     uint32
	Duration float64
}

// BuildSampleTable derives the flat, ordered sample list for one track's
// Stbl by combining Stsz (per-sample size), Stts (run-length sample
// duration), Stsc (samples-per-chunk runs) and the chunk offset table.
// timeScale is the track's Mdhd time_scale, used to convert each run's raw
// tick count into seconds.
// When both Stco and Co64 are present, Stco is preferred and widened,
// since a 32-bit chunk offset table can only be both present and correct
// for the same samples a 64-bit one describes when the file fits in 4GB.
func BuildSampleTable(stbl Stbl, timeScale uint32) ([]Sample, error) {
	stsz, err := stbl.Stsz.Get("stsz")
	if err != nil {
		return nil, err
	}
	stts, err := stbl.Stts.Get("stts")
	if err != nil {
		return nil, err
	}
	stsc, err := stbl.Stsc.Get("stsc")
	if err != nil {
		return nil, err
	}

	offsets, err := chunkOffsets(stbl)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, stsz.SampleCount)
	durationIdx, durationLeft := 0, uint32(0)
	nextDuration := func() float64 {
		for durationLeft == 0 && durationIdx < len(stts.Entries) {
			durationLeft = stts.Entries[durationIdx].SampleCount
			durationIdx++
		}
		if durationLeft == 0 {
			return 0
		}
		durationLeft--
		return float64(stts.Entries[durationIdx-1].SampleDelta) / float64(timeScale)
	}

	sampleIdx := 0
	for chunkIdx := range offsets {
		chunkNumber := uint32(chunkIdx + 1)
		perChunk := samplesPerChunk(stsc, chunkNumber)

		runningOffset := offsets[chunkIdx]
		for i := uint32(0); i < perChunk && sampleIdx < int(stsz.SampleCount); i++ {
			size := stsz.SizeOf(sampleIdx)
			samples = append(samples, Sample{
				Offset:   runningOffset,
				Size:     size,
				Duration: nextDuration(),
			})
			runningOffset += int64(size)
			sampleIdx++
		}
	}

	return samples, nil
}

// BuildAllSampleTables derives every track's sample table concurrently,
// since each track's derivation is independent pure computation over data
// already resident in the parsed Moov.
func BuildAllSampleTables(moov Moov) ([][]Sample, error) {
	traks := moov.Traks.All()
	tables := make([][]Sample, len(traks))

	var g errgroup.Group
	for i, trak := range traks {
		i, trak := i, trak
		g.Go(func() error {
			mdia, err := trak.Mdia.Get("mdia")
			if err != nil {
				return err
			}
			mdhd, err := mdia.Mdhd.Get("mdhd")
			if err != nil {
				return err
			}
			minf, err := mdia.Minf.Get("minf")
			if err != nil {
				return err
			}
			stbl, err := minf.Stbl.Get("stbl")
			if err != nil {
				return err
			}
			table, err := BuildSampleTable(stbl, mdhd.Timescale)
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// chunkOffsets returns the track's chunk offset table widened to int64,
// preferring Stco over Co64 when both are present.
func chunkOffsets(stbl Stbl) ([]int64, error) {
	if stco, ok := stbl.Stco.Get(); ok {
		out := make([]int64, len(stco.ChunkOffsets))
		for i, v := range stco.ChunkOffsets {
			out[i] = int64(v)
		}
		return out, nil
	}
	if co64, ok := stbl.Co64.Get(); ok {
		out := make([]int64, len(co64.ChunkOffsets))
		for i, v := range co64.ChunkOffsets {
			out[i] = int64(v)
		}
		return out, nil
	}
	return nil, errCo64OrStcoNotFound
}

// samplesPerChunk returns the samples-per-chunk run applicable to
// chunkNumber (1-based), per Stsc's "applies from FirstChunk until the
// next entry's FirstChunk" rule.
func samplesPerChunk(stsc Stsc, chunkNumber uint32) uint32 {
	var applicable uint32
	for _, e := range stsc.Entries {
		if e.FirstChunk > chunkNumber {
			break
		}
		applicable = e.SamplesPerChunk
	}
	return applicable
}
