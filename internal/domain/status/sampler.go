package status

import "github.com/edumarques81/mixerd/internal/types"

// Sampler is the pad configuration of devices with a sampler.
type Sampler struct {
	Banks map[types.SampleBank]map[types.SampleButtons]SamplerButton `json:"banks"`
}

// SamplerButton is the configuration of one pad in one bank.
type SamplerButton struct {
	Function  types.SamplePlaybackMode `json:"function"`
	Order     types.SamplePlayOrder    `json:"order"`
	Samples   []Sample                 `json:"samples"`
	IsPlaying bool                     `json:"is_playing"`
}

// Sample is one clip assigned to a pad. The percentages mark where playback
// starts and stops inside the source file.
type Sample struct {
	Name     string  `json:"name"`
	StartPct float32 `json:"start_pct"`
	StopPct  float32 `json:"stop_pct"`
}

// Button returns the pad configuration. The second result is false when the
// bank or pad is not configured.
func (s *Sampler) Button(bank types.SampleBank, pad types.SampleButtons) (SamplerButton, bool) {
	b, ok := s.Banks[bank][pad]
	return b, ok
}

// SetButton replaces the pad configuration.
func (s *Sampler) SetButton(bank types.SampleBank, pad types.SampleButtons, b SamplerButton) {
	if b.Samples == nil {
		b.Samples = []Sample{}
	}
	pads, ok := s.Banks[bank]
	if !ok {
		pads = make(map[types.SampleButtons]SamplerButton, types.SampleButtonsCount)
		s.Banks[bank] = pads
	}
	pads[pad] = b
}

// SetPlaying flags whether a pad is currently playing.
func (s *Sampler) SetPlaying(bank types.SampleBank, pad types.SampleButtons, playing bool) {
	b, _ := s.Button(bank, pad)
	b.IsPlaying = playing
	s.SetButton(bank, pad, b)
}

// wire fills in the nil maps and sample lists a hand-built sampler may carry.
func (s *Sampler) wire() *Sampler {
	if s == nil {
		return nil
	}
	banks := make(map[types.SampleBank]map[types.SampleButtons]SamplerButton, len(s.Banks))
	for bank, pads := range s.Banks {
		out := make(map[types.SampleButtons]SamplerButton, len(pads))
		for pad, b := range pads {
			if b.Samples == nil {
				b.Samples = []Sample{}
			}
			out[pad] = b
		}
		banks[bank] = out
	}
	return &Sampler{Banks: banks}
}

func defaultSampler() *Sampler {
	s := &Sampler{Banks: make(map[types.SampleBank]map[types.SampleButtons]SamplerButton, types.SampleBankCount)}
	for _, bank := range types.AllSampleBanks() {
		for _, pad := range types.AllSampleButtons() {
			s.SetButton(bank, pad, SamplerButton{
				Function: types.PlaybackPlayNext,
				Order:    types.OrderSequential,
				Samples:  []Sample{},
			})
		}
	}
	return s
}
