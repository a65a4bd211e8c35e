package rawlinear

import "math"

// ChannelStats summarizes one channel of an Image.
type ChannelStats struct {
	Min, Max, Mean float64
	// NonFinite counts NaN and infinite samples, they are excluded from Min, Max and Mean.
	NonFinite int
}

// Stats returns per-channel statistics in R, G, B order.
func Stats(img *Image) [3]ChannelStats {
	var (
		st  [3]ChannelStats
		sum [3]float64
		n   [3]int
	)

	for c := range st {
		st[c].Min = math.Inf(1)
		st[c].Max = math.Inf(-1)
	}

	for i, v := range img.Pix {
		c := i % 3
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			st[c].NonFinite++
			continue
		}
		if f < st[c].Min {
			st[c].Min = f
		}
		if f > st[c].Max {
			st[c].Max = f
		}
		sum[c] += f
		n[c]++
	}

	for c := range st {
		if n[c] == 0 {
			st[c].Min, st[c].Max = 0, 0
			continue
		}
		st[c].Mean = sum[c] / float64(n[c])
	}

	return st
}
