// Command alac2wav decodes an ALC1-container ALAC bitstream back to PCM WAV.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mewkiz/alac"
	"github.com/mewkiz/alac/cmd/internal/container"
	ibits "github.com/mewkiz/alac/internal/bits"
	"github.com/mewkiz/alac/internal/bufseekio"
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
	root := &cobra.Command{
		Use:   "alac2wav [ALC1 files]",
		Short: "Decode an ALAC core bitstream to PCM WAV",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := decodeFile(logger, path, force); err != nil {
					return err
				}
			}
			return nil
		},
	}
	root.Flags().BoolVarP(&force, "force", "f", false, "force overwrite")

	if err := root.Execute(); err != nil {
		logger.Error("alac2wav failed", zap.Error(err))
		os.Exit(1)
	}
}

func decodeFile(logger *zap.Logger, path string, force bool) error {
	rf, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer rf.Close()

	// Buffer the sequential header + frameset reads; the footer index is
	// read separately via direct seeks on rf, after which the buffer is
	// restarted from the beginning of the file.
	br := bufseekio.NewReadSeeker(rf)
	hdr, err := container.ReadHeader(br)
	if err != nil {
		return errors.WithStack(err)
	}
	entries, err := container.ReadFooter(rf)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := rf.Seek(0, io.SeekStart); err != nil {
		return errors.WithStack(err)
	}
	br = bufseekio.NewReadSeeker(rf)
	if _, err := container.ReadHeader(br); err != nil {
		return errors.WithStack(err)
	}
	// The framesets end where the footer index begins.
	var payload int64
	for _, e := range entries {
		payload += int64(e.ByteSize)
	}

	outPath := pathutil.TrimExt(path) + ".wav"
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return errors.Errorf("output file %q already present; use -f to force overwrite", outPath)
		}
	}
	wf, err := os.Create(outPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer wf.Close()

	channels, bps := int(hdr.Channels), int(hdr.BitsPerSample)
	enc := wav.NewEncoder(wf, int(hdr.SampleRate), bps, channels, 1)
	defer enc.Close()

	params := alac.Params{
		Channels:          channels,
		BlockSize:         int(hdr.BlockSize),
		BitsPerSample:     bps,
		InitialHistory:    alac.DefaultOptions().InitialHistory,
		HistoryMultiplier: alac.DefaultOptions().HistoryMultiplier,
		MaximumK:          alac.DefaultOptions().MaximumK,
	}
	dec, err := alac.NewDecoder(ibits.NewReader(io.LimitReader(br, payload)), params)
	if err != nil {
		return errors.WithStack(err)
	}

	total := 0
	for {
		group, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.WithStack(err)
		}
		n := len(group[0])
		buf := &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: int(hdr.SampleRate)},
			Data:           make([]int, n*channels),
			SourceBitDepth: bps,
		}
		for c := 0; c < channels; c++ {
			for i := 0; i < n; i++ {
				buf.Data[i*channels+c] = int(group[c][i])
			}
		}
		if err := enc.Write(buf); err != nil {
			return errors.WithStack(err)
		}
		total += n
	}

	logger.Info("decoded ALAC to WAV",
		zap.String("input", path),
		zap.String("output", outPath),
		zap.Int("channels", channels),
		zap.Int("framesets", len(entries)),
		zap.Int("pcm_frames", total),
	)
	return nil
}
