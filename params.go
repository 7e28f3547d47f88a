package alac

// Params describes the stream layout a Decoder needs but cannot infer from
// the bitstream alone: the channel count, block size and sample depth a
// muxer would otherwise carry in a magic cookie / ALACSpecificConfig.
type Params struct {
	Channels      int
	BlockSize     int
	BitsPerSample int

	InitialHistory    int
	HistoryMultiplier int
	MaximumK          int
}

// ParamsFromOptions derives decode Params matching the tuning an Encoder
// configured with opts would have used, for the given channel count.
func ParamsFromOptions(channels int, opts Options) Params {
	return Params{
		Channels:          channels,
		BlockSize:         opts.BlockSize,
		BitsPerSample:     opts.BitsPerSample,
		InitialHistory:    opts.InitialHistory,
		HistoryMultiplier: opts.HistoryMultiplier,
		MaximumK:          opts.MaximumK,
	}
}
