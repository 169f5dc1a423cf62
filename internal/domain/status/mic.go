package status

import "github.com/edumarques81/mixerd/internal/types"

// MicSettings is the microphone selection and its processing chain.
type MicSettings struct {
	MicType       types.MicrophoneType              `json:"mic_type"`
	MicGains      [types.MicrophoneTypeCount]uint16 `json:"mic_gains"`
	Equaliser     Equaliser                         `json:"equaliser"`
	EqualiserMini EqualiserMini                     `json:"equaliser_mini"`
	NoiseGate     NoiseGate                         `json:"noise_gate"`
	Compressor    Compressor                        `json:"compressor"`
}

// Equaliser is the ten band equaliser of the full-size mixer.
type Equaliser struct {
	Gain      map[types.EqFrequencies]int8    `json:"gain"`
	Frequency map[types.EqFrequencies]float32 `json:"frequency"`
}

// EqualiserMini is the six band equaliser of the Mini.
type EqualiserMini struct {
	Gain      map[types.MiniEqFrequencies]int8    `json:"gain"`
	Frequency map[types.MiniEqFrequencies]float32 `json:"frequency"`
}

type NoiseGate struct {
	Threshold   int8            `json:"threshold"`
	Attack      types.GateTimes `json:"attack"`
	Release     types.GateTimes `json:"release"`
	Enabled     bool            `json:"enabled"`
	Attenuation uint8           `json:"attenuation"`
}

type Compressor struct {
	Threshold  int8                        `json:"threshold"`
	Ratio      types.CompressorRatio       `json:"ratio"`
	Attack     types.CompressorAttackTime  `json:"attack"`
	Release    types.CompressorReleaseTime `json:"release"`
	MakeupGain uint8                       `json:"makeup_gain"`
}

var (
	eqCentres     = [types.EqFrequenciesCount]float32{31.5, 63, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}
	miniEqCentres = [types.MiniEqFrequenciesCount]float32{90, 250, 500, 1000, 3000, 8000}
)

func (s MicSettings) wire() MicSettings {
	s.Equaliser = Equaliser{Gain: orEmpty(s.Equaliser.Gain), Frequency: orEmpty(s.Equaliser.Frequency)}
	s.EqualiserMini = EqualiserMini{Gain: orEmpty(s.EqualiserMini.Gain), Frequency: orEmpty(s.EqualiserMini.Frequency)}
	return s
}

func defaultMicSettings() MicSettings {
	eq := Equaliser{
		Gain:      make(map[types.EqFrequencies]int8, types.EqFrequenciesCount),
		Frequency: make(map[types.EqFrequencies]float32, types.EqFrequenciesCount),
	}
	for _, f := range types.AllEqFrequencies() {
		eq.Gain[f] = 0
		eq.Frequency[f] = eqCentres[f]
	}

	mini := EqualiserMini{
		Gain:      make(map[types.MiniEqFrequencies]int8, types.MiniEqFrequenciesCount),
		Frequency: make(map[types.MiniEqFrequencies]float32, types.MiniEqFrequenciesCount),
	}
	for _, f := range types.AllMiniEqFrequencies() {
		mini.Gain[f] = 0
		mini.Frequency[f] = miniEqCentres[f]
	}

	return MicSettings{
		MicType:       types.MicDynamic,
		Equaliser:     eq,
		EqualiserMini: mini,
		NoiseGate: NoiseGate{
			Threshold:   -50,
			Attack:      types.Gate10ms,
			Release:     types.Gate200ms,
			Enabled:     true,
			Attenuation: 100,
		},
		Compressor: Compressor{
			Threshold: -20,
			Ratio:     types.Ratio3_2,
			Attack:    types.Attack2ms,
			Release:   types.Release100ms,
		},
	}
}
