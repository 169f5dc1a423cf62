package status

import "github.com/edumarques81/mixerd/internal/types"

// Lighting holds the colour configuration of every lit target on the device.
// A target missing from its map does not exist on this variant.
type Lighting struct {
	Faders   map[types.FaderName]FaderLighting              `json:"faders"`
	Buttons  map[types.ButtonColourTargets]ButtonLighting   `json:"buttons"`
	Simple   map[types.SimpleColourTargets]OneColour        `json:"simple"`
	Sampler  map[types.SamplerColourTargets]SamplerLighting `json:"sampler"`
	Encoders map[types.EncoderColourTargets]ThreeColours    `json:"encoders"`
}

// ButtonLighting is the colour pair of a lit button and how it looks when off.
type ButtonLighting struct {
	OffStyle types.ButtonColourOffStyle `json:"off_style"`
	Colours  TwoColours                 `json:"colours"`
}

// SamplerLighting is the colour set of a sampler bank button.
type SamplerLighting struct {
	OffStyle types.ButtonColourOffStyle `json:"off_style"`
	Colours  ThreeColours               `json:"colours"`
}

// FaderLighting is the display style and colours of a fader strip.
type FaderLighting struct {
	Style   types.FaderDisplayStyle `json:"style"`
	Colours TwoColours              `json:"colours"`
}

// Colours are opaque hex codes; they are not validated here.
type OneColour struct {
	ColourOne string `json:"colour_one"`
}

type TwoColours struct {
	ColourOne string `json:"colour_one"`
	ColourTwo string `json:"colour_two"`
}

type ThreeColours struct {
	ColourOne   string `json:"colour_one"`
	ColourTwo   string `json:"colour_two"`
	ColourThree string `json:"colour_three"`
}

const (
	colourActive   = "00FFFF"
	colourInactive = "000000"
	colourAccent   = "FFFFFF"
)

// miniButtons are the lit buttons present on every variant that has lighting.
var miniButtons = []types.ButtonColourTargets{
	types.ButtonFader1Mute,
	types.ButtonFader2Mute,
	types.ButtonFader3Mute,
	types.ButtonFader4Mute,
	types.ButtonBleep,
	types.ButtonCough,
}

func defaultLighting(v types.DeviceType) Lighting {
	l := Lighting{
		Faders:   make(map[types.FaderName]FaderLighting),
		Buttons:  make(map[types.ButtonColourTargets]ButtonLighting),
		Simple:   make(map[types.SimpleColourTargets]OneColour),
		Sampler:  make(map[types.SamplerColourTargets]SamplerLighting),
		Encoders: make(map[types.EncoderColourTargets]ThreeColours),
	}
	if v == types.DeviceTypeUnknown {
		return l
	}

	two := TwoColours{ColourOne: colourActive, ColourTwo: colourInactive}
	for _, f := range types.AllFaderNames() {
		l.Faders[f] = FaderLighting{Style: types.FaderStyleTwoColour, Colours: two}
	}

	buttons := miniButtons
	simple := []types.SimpleColourTargets{types.SimpleGlobal, types.SimpleAccent}
	if v == types.DeviceTypeFull {
		buttons = types.AllButtonColourTargets()
		simple = types.AllSimpleColourTargets()
	}
	for _, b := range buttons {
		l.Buttons[b] = ButtonLighting{OffStyle: types.OffDimmed, Colours: two}
	}
	for _, s := range simple {
		l.Simple[s] = OneColour{ColourOne: colourAccent}
	}

	caps := CapabilitiesOf(v)
	three := ThreeColours{ColourOne: colourActive, ColourTwo: colourInactive, ColourThree: colourAccent}
	if caps.SamplerLighting {
		for _, s := range types.AllSamplerColourTargets() {
			l.Sampler[s] = SamplerLighting{OffStyle: types.OffDimmed, Colours: three}
		}
	}
	if caps.EncoderLighting {
		for _, e := range types.AllEncoderColourTargets() {
			l.Encoders[e] = three
		}
	}
	return l
}

// check rejects lit targets the variant cannot have.
func (l Lighting) check(v types.DeviceType) *StateError {
	caps := CapabilitiesOf(v)
	if !caps.SamplerLighting && len(l.Sampler) > 0 {
		return &StateError{Path: "lighting.sampler", Err: unsupported(v, CapabilitySamplerLighting)}
	}
	if !caps.EncoderLighting && len(l.Encoders) > 0 {
		return &StateError{Path: "lighting.encoders", Err: unsupported(v, CapabilityEncoderLighting)}
	}
	return nil
}

// orEmpty lets nil maps encode as {} rather than null.
func orEmpty[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return M{}
	}
	return m
}

func (l Lighting) wire() Lighting {
	return Lighting{
		Faders:   orEmpty(l.Faders),
		Buttons:  orEmpty(l.Buttons),
		Simple:   orEmpty(l.Simple),
		Sampler:  orEmpty(l.Sampler),
		Encoders: orEmpty(l.Encoders),
	}
}
