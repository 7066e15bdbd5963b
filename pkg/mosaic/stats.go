package mosaic

import (
	"github.com/montanaflynn/stats"
)

// RegionStats summarises the region sizes of one partition.
type RegionStats struct {
	Regions        int     `json:"regions"`
	AccentRegions  int     `json:"accent_regions"`
	NeutralRegions int     `json:"neutral_regions"`
	Cells          int     `json:"cells"`
	Largest        int     `json:"largest"`
	Smallest       int     `json:"smallest"`
	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	P90            float64 `json:"p90"`
}

// ComputeStats summarises p.
func ComputeStats(p *Partition) RegionStats {
	s := RegionStats{Regions: p.Len()}
	if p.Len() == 0 {
		return s
	}

	sizes := make(stats.Float64Data, 0, p.Len())
	for i := range p.Regions {
		r := &p.Regions[i]
		sizes = append(sizes, float64(r.Size()))
		s.Cells += r.Size()
		if r.Accent {
			s.AccentRegions++
		} else {
			s.NeutralRegions++
		}
	}

	largest, _ := sizes.Max()
	smallest, _ := sizes.Min()
	s.Largest, s.Smallest = int(largest), int(smallest)
	s.Mean, _ = sizes.Mean()
	s.Median, _ = sizes.Median()
	s.P90, _ = sizes.Percentile(90)
	return s
}
