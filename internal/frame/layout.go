package frame

// layouts maps a stream's channel count to the fixed sequence of 1- or
// 2-channel groups its frameset emits, each entry a channel index (or a
// pair of indices for a stereo group, left-channel index first).
var layouts = map[int][][]int{
	1: {{0}},
	2: {{0, 1}},
	3: {{2}, {0, 1}},
	4: {{2}, {0, 1}, {3}},
	5: {{2}, {0, 1}, {3, 4}},
	6: {{2}, {0, 1}, {4, 5}, {3}},
	7: {{2}, {0, 1}, {4, 5}, {6}, {3}},
	8: {{2}, {6, 7}, {0, 1}, {4, 5}, {3}},
}

// Layout returns the frame groups for a stream with the given channel
// count. Counts outside 1..8 fall back to one single-channel frame per
// channel, in channel order.
func Layout(channels int) [][]int {
	if g, ok := layouts[channels]; ok {
		return g
	}
	groups := make([][]int, channels)
	for i := range groups {
		groups[i] = []int{i}
	}
	return groups
}
