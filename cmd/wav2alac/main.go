// Command wav2alac encodes a PCM WAV file to a raw ALAC bitstream wrapped in
// the minimal ALC1 container.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mewkiz/alac"
	"github.com/mewkiz/alac/cmd/internal/container"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	var force bool
	var blockSize int
	root := &cobra.Command{
		Use:   "wav2alac [wav files]",
		Short: "Encode WAV audio to the ALAC core codec",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, wavPath := range args {
				if err := encodeFile(logger, wavPath, force, blockSize); err != nil {
					return err
				}
			}
			return nil
		},
	}
	root.Flags().BoolVarP(&force, "force", "f", false, "force overwrite")
	root.Flags().IntVar(&blockSize, "block-size", alac.DefaultOptions().BlockSize, "sample frames per frameset")

	if err := root.Execute(); err != nil {
		logger.Error("wav2alac failed", zap.Error(err))
		os.Exit(1)
	}
}

func encodeFile(logger *zap.Logger, wavPath string, force bool, blockSize int) error {
	r, err := os.Open(wavPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer r.Close()
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return errors.Errorf("invalid WAV file %q", wavPath)
	}
	if err := dec.FwdToPCM(); err != nil {
		return errors.WithStack(err)
	}
	channels, bps, sampleRate := int(dec.NumChans), int(dec.BitDepth), int(dec.SampleRate)

	outPath := pathutil.TrimExt(wavPath) + ".alac"
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return errors.Errorf("output file %q already present; use -f to force overwrite", outPath)
		}
	}
	w, err := os.Create(outPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer w.Close()

	opts := alac.DefaultOptions()
	opts.BlockSize = blockSize
	opts.BitsPerSample = bps

	if err := container.WriteHeader(w, container.Header{
		Channels:      uint8(channels),
		BitsPerSample: uint8(bps),
		SampleRate:    uint32(sampleRate),
		BlockSize:     uint32(opts.BlockSize),
	}); err != nil {
		return errors.WithStack(err)
	}

	sink := container.NewFileSink(w)
	enc, err := alac.NewEncoder(sink, channels, bps, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	src := &wavSource{dec: dec, channels: channels, bitsPerSample: bps}
	sizes, err := enc.EncodeAll(src)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := enc.Close(); err != nil {
		return errors.WithStack(err)
	}

	entries := make([]container.FramesetEntry, len(sizes))
	total := 0
	for i, sz := range sizes {
		entries[i] = container.FramesetEntry{ByteSize: uint32(sz.ByteSize), PCMFrames: uint32(sz.PCMFrames)}
		total += sz.PCMFrames
	}
	if err := container.WriteFooter(w, entries); err != nil {
		return errors.WithStack(err)
	}

	logger.Info("encoded WAV to ALAC",
		zap.String("input", wavPath),
		zap.String("output", outPath),
		zap.Int("channels", channels),
		zap.Int("bits_per_sample", bps),
		zap.Int("framesets", len(sizes)),
		zap.Int("pcm_frames", total),
	)
	return nil
}

// wavSource adapts a wav.Decoder to alac.PCMSource, deinterleaving each read
// into one slice per channel.
type wavSource struct {
	dec           *wav.Decoder
	channels      int
	bitsPerSample int
	ibuf          audio.IntBuffer
}

func (s *wavSource) Channels() int      { return s.channels }
func (s *wavSource) BitsPerSample() int { return s.bitsPerSample }

func (s *wavSource) Read(buf [][]int32) (int, error) {
	want := len(buf[0]) * s.channels
	if cap(s.ibuf.Data) < want {
		s.ibuf.Data = make([]int, want)
	}
	s.ibuf.Data = s.ibuf.Data[:want]
	s.ibuf.Format = &audio.Format{NumChannels: s.channels, SampleRate: int(s.dec.SampleRate)}
	s.ibuf.SourceBitDepth = s.bitsPerSample

	n, err := s.dec.PCMBuffer(&s.ibuf)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	frames := n / s.channels
	for c := 0; c < s.channels; c++ {
		for i := 0; i < frames; i++ {
			buf[c][i] = int32(s.ibuf.Data[i*s.channels+c])
		}
	}
	if frames == 0 {
		return 0, io.EOF
	}
	if s.dec.EOF() {
		return frames, io.EOF
	}
	return frames, nil
}
