package status

import (
	"fmt"

	"github.com/edumarques81/mixerd/internal/types"
)

// Effects is the voice effects state of devices with an effects section.
type Effects struct {
	ActivePreset types.EffectBankPresets            `json:"active_preset"`
	PresetNames  map[types.EffectBankPresets]string `json:"preset_names"`
	Current      ActiveEffects                      `json:"current"`
}

// ActiveEffects are the parameters of the currently loaded preset.
type ActiveEffects struct {
	Reverb    Reverb    `json:"reverb"`
	Echo      Echo      `json:"echo"`
	Pitch     Pitch     `json:"pitch"`
	Gender    Gender    `json:"gender"`
	Megaphone Megaphone `json:"megaphone"`
	Robot     Robot     `json:"robot"`
	HardTune  HardTune  `json:"hard_tune"`
}

type Reverb struct {
	Style      types.ReverbStyle `json:"style"`
	Amount     uint8             `json:"amount"`
	Decay      uint16            `json:"decay"`
	EarlyLevel int8              `json:"early_level"`
	TailLevel  int8              `json:"tail_level"`
	PreDelay   uint8             `json:"pre_delay"`
	LoColour   int8              `json:"lo_colour"`
	HiColour   int8              `json:"hi_colour"`
	HiFactor   int8              `json:"hi_factor"`
	Diffuse    int8              `json:"diffuse"`
	ModSpeed   int8              `json:"mod_speed"`
	ModDepth   int8              `json:"mod_depth"`
}

type Echo struct {
	Style           types.EchoStyle `json:"style"`
	Amount          uint8           `json:"amount"`
	Feedback        uint8           `json:"feedback"`
	Tempo           uint16          `json:"tempo"`
	DelayLeft       uint16          `json:"delay_left"`
	DelayRight      uint16          `json:"delay_right"`
	FeedbackLeft    uint8           `json:"feedback_left"`
	FeedbackRight   uint8           `json:"feedback_right"`
	FeedbackXFBLToR uint8           `json:"feedback_xfb_l_to_r"`
	FeedbackXFBRToL uint8           `json:"feedback_xfb_r_to_l"`
}

type Pitch struct {
	Style     types.PitchStyle `json:"style"`
	Amount    int8             `json:"amount"`
	Character uint8            `json:"character"`
}

type Gender struct {
	Style  types.GenderStyle `json:"style"`
	Amount int8              `json:"amount"`
}

type Megaphone struct {
	IsEnabled bool                 `json:"is_enabled"`
	Style     types.MegaphoneStyle `json:"style"`
	Amount    uint8                `json:"amount"`
	PostGain  int8                 `json:"post_gain"`
}

type Robot struct {
	IsEnabled  bool             `json:"is_enabled"`
	Style      types.RobotStyle `json:"style"`
	LowGain    int8             `json:"low_gain"`
	LowFreq    uint8            `json:"low_freq"`
	LowWidth   uint8            `json:"low_width"`
	MidGain    int8             `json:"mid_gain"`
	MidFreq    uint8            `json:"mid_freq"`
	MidWidth   uint8            `json:"mid_width"`
	HighGain   int8             `json:"high_gain"`
	HighFreq   uint8            `json:"high_freq"`
	HighWidth  uint8            `json:"high_width"`
	Waveform   uint8            `json:"waveform"`
	PulseWidth uint8            `json:"pulse_width"`
	Threshold  int8             `json:"threshold"`
	DryMix     int8             `json:"dry_mix"`
}

type HardTune struct {
	IsEnabled bool                 `json:"is_enabled"`
	Style     types.HardTuneStyle  `json:"style"`
	Amount    uint8                `json:"amount"`
	Rate      uint8                `json:"rate"`
	Window    uint16               `json:"window"`
	Source    types.HardTuneSource `json:"source"`
}

// RenamePreset sets the user-visible name of a preset.
func (e *Effects) RenamePreset(p types.EffectBankPresets, name string) {
	e.PresetNames[p] = name
}

func (e *Effects) wire() *Effects {
	if e == nil {
		return nil
	}
	c := *e
	c.PresetNames = orEmpty(e.PresetNames)
	return &c
}

func defaultEffects() *Effects {
	names := make(map[types.EffectBankPresets]string, types.EffectBankPresetsCount)
	for i, p := range types.AllEffectBankPresets() {
		names[p] = fmt.Sprintf("Preset %d", i+1)
	}
	return &Effects{
		ActivePreset: types.Preset1,
		PresetNames:  names,
		Current: ActiveEffects{
			Reverb: Reverb{
				Style:    types.ReverbLibrary,
				Amount:   0,
				Decay:    1000,
				PreDelay: 20,
				Diffuse:  0,
			},
			Echo: Echo{
				Style: types.EchoQuarter,
				Tempo: 120,
			},
			Pitch:     Pitch{Style: types.PitchNarrow},
			Gender:    Gender{Style: types.GenderMedium},
			Megaphone: Megaphone{Style: types.MegaphoneMegaphone},
			Robot:     Robot{Style: types.Robot1},
			HardTune: HardTune{
				Style:  types.HardTuneNatural,
				Window: 20,
				Source: types.HardTuneSourceAll,
			},
		},
	}
}
