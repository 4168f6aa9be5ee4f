package wavemaker

// Summary is the reportable state of a Spectrum
type Summary struct {
	Alpha          float64 `yaml:"alpha"`
	PeakSharpening float64 `yaml:"gamma"`
	PeakFrequency  float64 `yaml:"w_p"`
	MaxFrequency   float64 `yaml:"w_max"`
	SigmaLow       float64 `yaml:"s1"` // ω ≤ ω_p
	SigmaHigh      float64 `yaml:"s2"` // ω > ω_p
	WindSpeed10m   float64 `yaml:"vel10,omitempty"`
	Fetch          float64 `yaml:"fetch,omitempty"`

	NumBins       int       `yaml:"nbins"`
	Boundaries    []float64 `yaml:"boundaries,omitempty"`
	Centers       []float64 `yaml:"w_c,omitempty"`
	Energies      []float64 `yaml:"energies,omitempty"`
	Amplitudes    []float64 `yaml:"amps,omitempty"`
	TotalArea     float64   `yaml:"total_area,omitempty"`
	SignificantHs float64   `yaml:"hs,omitempty"`
}

// Summary collects the parameters and whatever pipeline outputs exist so far
func (s *Spectrum) Summary() Summary {
	p := s.params
	sum := Summary{
		Alpha:          p.Alpha(),
		PeakSharpening: p.PeakSharpening(),
		PeakFrequency:  p.PeakFrequency(),
		MaxFrequency:   p.MaxFrequency(),
		SigmaLow:       p.SigmaLow(),
		SigmaHigh:      p.SigmaHigh(),
	}
	if p.FromWind() {
		sum.WindSpeed10m = p.WindSpeed10m()
		sum.Fetch = p.Fetch()
	}

	if s.bins != nil {
		sum.NumBins = s.bins.NumBins()
		sum.Boundaries = s.bins.Boundaries()
		sum.Centers = s.bins.Centers()
	}
	if s.energies != nil {
		sum.Energies = append([]float64(nil), s.energies.Energies...)
		sum.TotalArea = s.energies.TotalArea
		sum.SignificantHs = s.energies.SignificantWaveHeight()
	}
	sum.Amplitudes = s.Amplitudes()
	return sum
}
