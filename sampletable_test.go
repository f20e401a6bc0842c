package isobmff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSampleTable(t *testing.T) {
	var stbl Stbl
	require.NoError(t, stbl.Stsz.Set(Stsz{
		SampleCount: 5,
		EntrySizes:  []uint32{100, 100, 150, 150, 150},
	}))
	require.NoError(t, stbl.Stts.Set(Stts{
		Entries: []SttsEntry{
			{SampleCount: 2, SampleDelta: 1000},
			{SampleCount: 3, SampleDelta: 2000},
		},
	}))
	require.NoError(t, stbl.Stsc.Set(Stsc{
		Entries: []StscEntry{
			{FirstChunk: 1, SamplesPerChunk: 2, SampleDescriptionID: 1},
			{FirstChunk: 2, SamplesPerChunk: 3, SampleDescriptionID: 1},
		},
	}))
	stbl.Stco.Set(Stco{ChunkOffsets: []uint32{1000, 1300}})

	samples, err := BuildSampleTable(stbl, 1000)
	require.NoError(t, err)
	require.Len(t, samples, 5)

	require.Equal(t, Sample{Offset: 1000, Size: 100, Duration: 1}, samples[0])
	require.Equal(t, Sample{Offset: 1100, Size: 100, Duration: 1}, samples[1])
	require.Equal(t, Sample{Offset: 1300, Size: 150, Duration: 2}, samples[2])
	require.Equal(t, Sample{Offset: 1450, Size: 150, Duration: 2}, samples[3])
	require.Equal(t, Sample{Offset: 1600, Size: 150, Duration: 2}, samples[4])
}

// TestBuildSampleTableS6Scenario is the literal S6 worked example:
// stts=[(2,1000)], stsz=[10,20], stsc=[(1,2,1)], stco=[500], time_scale=1000.
func TestBuildSampleTableS6Scenario(t *testing.T) {
	var stbl Stbl
	require.NoError(t, stbl.Stsz.Set(Stsz{SampleCount: 2, EntrySizes: []uint32{10, 20}}))
	require.NoError(t, stbl.Stts.Set(Stts{Entries: []SttsEntry{{SampleCount: 2, SampleDelta: 1000}}}))
	require.NoError(t, stbl.Stsc.Set(Stsc{Entries: []StscEntry{{FirstChunk: 1, SamplesPerChunk: 2, SampleDescriptionID: 1}}}))
	stbl.Stco.Set(Stco{ChunkOffsets: []uint32{500}})

	samples, err := BuildSampleTable(stbl, 1000)
	require.NoError(t, err)
	require.Equal(t, []Sample{
		{Offset: 500, Size: 10, Duration: 1},
		{Offset: 510, Size: 20, Duration: 1},
	}, samples)
}

func TestBuildSampleTablePrefersStcoOverCo64(t *testing.T) {
	var stbl Stbl
	require.NoError(t, stbl.Stsz.Set(Stsz{SampleCount: 1, EntrySizes: []uint32{10}}))
	require.NoError(t, stbl.Stts.Set(Stts{Entries: []SttsEntry{{SampleCount: 1, SampleDelta: 1}}}))
	require.NoError(t, stbl.Stsc.Set(Stsc{Entries: []StscEntry{{FirstChunk: 1, SamplesPerChunk: 1, SampleDescriptionID: 1}}}))
	stbl.Stco.Set(Stco{ChunkOffsets: []uint32{42}})
	stbl.Co64.Set(Co64{ChunkOffsets: []uint64{999}})

	samples, err := BuildSampleTable(stbl, 1)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	require.EqualValues(t, 42, samples[0].Offset)
}

func TestBuildSampleTableMissingChunkOffsets(t *testing.T) {
	var stbl Stbl
	require.NoError(t, stbl.Stsz.Set(Stsz{SampleCount: 1, EntrySizes: []uint32{10}}))
	require.NoError(t, stbl.Stts.Set(Stts{Entries: []SttsEntry{{SampleCount: 1, SampleDelta: 1}}}))
	require.NoError(t, stbl.Stsc.Set(Stsc{Entries: []StscEntry{{FirstChunk: 1, SamplesPerChunk: 1, SampleDescriptionID: 1}}}))

	_, err := BuildSampleTable(stbl, 1)
	require.ErrorIs(t, err, errCo64OrStcoNotFound)
}
