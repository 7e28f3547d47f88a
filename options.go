package alac

// Options carries the per-stream tuning an Encoder or Decoder is configured
// with. The zero value is not directly usable; call DefaultOptions and
// adjust fields from there.
type Options struct {
	// BlockSize is the number of sample frames per frameset, aside from a
	// possible short final block.
	BlockSize int

	// BitsPerSample is the source sample depth: 16 or 24.
	BitsPerSample int

	// InitialHistory, HistoryMultiplier and MaximumK tune the adaptive Rice
	// coder's history-to-k mapping.
	InitialHistory    int
	HistoryMultiplier int
	MaximumK          int

	// MinLeftWeight and MaxLeftWeight bound the stereo leftweight search the
	// encoder performs for each compressed stereo frame.
	MinLeftWeight int
	MaxLeftWeight int
}

// DefaultOptions returns the tuning used by reference ALAC encoders: a 4096
// sample block size, the standard Rice history parameters, and a leftweight
// search over 0..4.
func DefaultOptions() Options {
	return Options{
		BlockSize:         4096,
		BitsPerSample:     16,
		InitialHistory:    10,
		HistoryMultiplier: 40,
		MaximumK:          14,
		MinLeftWeight:     0,
		MaxLeftWeight:     4,
	}
}

func (o Options) validate() error {
	if o.BlockSize <= 0 {
		return ErrInvalidBlockSize
	}
	if o.BitsPerSample != 16 && o.BitsPerSample != 24 {
		return ErrUnsupportedBitDepth
	}
	return nil
}
