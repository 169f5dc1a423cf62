package types

// Lighting targets and styles.

// ButtonColourTargets are the buttons with two-colour lighting.
type ButtonColourTargets uint8

const (
	ButtonFader1Mute ButtonColourTargets = iota
	ButtonFader2Mute
	ButtonFader3Mute
	ButtonFader4Mute
	ButtonBleep
	ButtonCough
	ButtonEffectSelect1
	ButtonEffectSelect2
	ButtonEffectSelect3
	ButtonEffectSelect4
	ButtonEffectSelect5
	ButtonEffectSelect6
	ButtonEffectFx
	ButtonEffectMegaphone
	ButtonEffectRobot
	ButtonEffectHardTune
	ButtonSamplerSelectA
	ButtonSamplerSelectB
	ButtonSamplerSelectC
	ButtonSamplerTopLeft
	ButtonSamplerTopRight
	ButtonSamplerBottomLeft
	ButtonSamplerBottomRight
	ButtonSamplerClear
)

// ButtonColourTargetsCount is the number of ButtonColourTargets values.
const ButtonColourTargetsCount = 24

var buttonColourTargetsTable = newEnum[ButtonColourTargets]("ButtonColourTargets", ButtonColourTargetsCount,
	"Fader1Mute", "Fader2Mute", "Fader3Mute", "Fader4Mute", "Bleep", "Cough",
	"EffectSelect1", "EffectSelect2", "EffectSelect3", "EffectSelect4", "EffectSelect5",
	"EffectSelect6", "EffectFx", "EffectMegaphone", "EffectRobot", "EffectHardTune",
	"SamplerSelectA", "SamplerSelectB", "SamplerSelectC", "SamplerTopLeft",
	"SamplerTopRight", "SamplerBottomLeft", "SamplerBottomRight", "SamplerClear",
)

func (b ButtonColourTargets) String() string { return buttonColourTargetsTable.name(b) }

// Valid reports whether b is a declared ButtonColourTargets.
func (b ButtonColourTargets) Valid() bool { return buttonColourTargetsTable.valid(b) }

// MarshalText encodes b as its symbolic name.
func (b ButtonColourTargets) MarshalText() ([]byte, error) { return buttonColourTargetsTable.marshal(b) }

// UnmarshalText accepts only the symbolic names of ButtonColourTargets.
func (b *ButtonColourTargets) UnmarshalText(text []byte) error { return buttonColourTargetsTable.unmarshal(b, text) }

// ParseButtonColourTargets resolves a symbolic name.
func ParseButtonColourTargets(s string) (ButtonColourTargets, error) { return buttonColourTargetsTable.parse(s) }

// AllButtonColourTargets lists every ButtonColourTargets in declaration order.
func AllButtonColourTargets() []ButtonColourTargets { return buttonColourTargetsTable.all() }

// ButtonColourOffStyle is how a lit button looks when inactive.
type ButtonColourOffStyle uint8

const (
	OffDimmed ButtonColourOffStyle = iota
	OffColour2
	OffDimmedColour2
)

// ButtonColourOffStyleCount is the number of ButtonColourOffStyle values.
const ButtonColourOffStyleCount = 3

var buttonColourOffStyleTable = newEnum[ButtonColourOffStyle]("ButtonColourOffStyle", ButtonColourOffStyleCount,
	"Dimmed", "Colour2", "DimmedColour2",
)

func (b ButtonColourOffStyle) String() string { return buttonColourOffStyleTable.name(b) }

// Valid reports whether b is a declared ButtonColourOffStyle.
func (b ButtonColourOffStyle) Valid() bool { return buttonColourOffStyleTable.valid(b) }

// MarshalText encodes b as its symbolic name.
func (b ButtonColourOffStyle) MarshalText() ([]byte, error) { return buttonColourOffStyleTable.marshal(b) }

// UnmarshalText accepts only the symbolic names of ButtonColourOffStyle.
func (b *ButtonColourOffStyle) UnmarshalText(text []byte) error { return buttonColourOffStyleTable.unmarshal(b, text) }

// ParseButtonColourOffStyle resolves a symbolic name.
func ParseButtonColourOffStyle(s string) (ButtonColourOffStyle, error) { return buttonColourOffStyleTable.parse(s) }

// AllButtonColourOffStyles lists every ButtonColourOffStyle in declaration order.
func AllButtonColourOffStyles() []ButtonColourOffStyle { return buttonColourOffStyleTable.all() }

// FaderDisplayStyle is how a fader's light strip is drawn.
type FaderDisplayStyle uint8

const (
	FaderStyleTwoColour FaderDisplayStyle = iota
	FaderStyleGradient
	FaderStyleMeter
	FaderStyleGradientMeter
)

// FaderDisplayStyleCount is the number of FaderDisplayStyle values.
const FaderDisplayStyleCount = 4

var faderDisplayStyleTable = newEnum[FaderDisplayStyle]("FaderDisplayStyle", FaderDisplayStyleCount,
	"TwoColour", "Gradient", "Meter", "GradientMeter",
)

func (f FaderDisplayStyle) String() string { return faderDisplayStyleTable.name(f) }

// Valid reports whether f is a declared FaderDisplayStyle.
func (f FaderDisplayStyle) Valid() bool { return faderDisplayStyleTable.valid(f) }

// MarshalText encodes f as its symbolic name.
func (f FaderDisplayStyle) MarshalText() ([]byte, error) { return faderDisplayStyleTable.marshal(f) }

// UnmarshalText accepts only the symbolic names of FaderDisplayStyle.
func (f *FaderDisplayStyle) UnmarshalText(b []byte) error { return faderDisplayStyleTable.unmarshal(f, b) }

// ParseFaderDisplayStyle resolves a symbolic name.
func ParseFaderDisplayStyle(s string) (FaderDisplayStyle, error) { return faderDisplayStyleTable.parse(s) }

// AllFaderDisplayStyles lists every FaderDisplayStyle in declaration order.
func AllFaderDisplayStyles() []FaderDisplayStyle { return faderDisplayStyleTable.all() }

// SimpleColourTargets are areas lit with a single colour.
type SimpleColourTargets uint8

const (
	SimpleGlobal SimpleColourTargets = iota
	SimpleAccent
	SimpleScribble1
	SimpleScribble2
	SimpleScribble3
	SimpleScribble4
)

// SimpleColourTargetsCount is the number of SimpleColourTargets values.
const SimpleColourTargetsCount = 6

var simpleColourTargetsTable = newEnum[SimpleColourTargets]("SimpleColourTargets", SimpleColourTargetsCount,
	"Global", "Accent", "Scribble1", "Scribble2", "Scribble3", "Scribble4",
)

func (s SimpleColourTargets) String() string { return simpleColourTargetsTable.name(s) }

// Valid reports whether s is a declared SimpleColourTargets.
func (s SimpleColourTargets) Valid() bool { return simpleColourTargetsTable.valid(s) }

// MarshalText encodes s as its symbolic name.
func (s SimpleColourTargets) MarshalText() ([]byte, error) { return simpleColourTargetsTable.marshal(s) }

// UnmarshalText accepts only the symbolic names of SimpleColourTargets.
func (s *SimpleColourTargets) UnmarshalText(b []byte) error { return simpleColourTargetsTable.unmarshal(s, b) }

// ParseSimpleColourTargets resolves a symbolic name.
func ParseSimpleColourTargets(s string) (SimpleColourTargets, error) { return simpleColourTargetsTable.parse(s) }

// AllSimpleColourTargets lists every SimpleColourTargets in declaration order.
func AllSimpleColourTargets() []SimpleColourTargets { return simpleColourTargetsTable.all() }

// SamplerColourTargets are the sampler bank selectors.
type SamplerColourTargets uint8

const (
	SamplerSelectA SamplerColourTargets = iota
	SamplerSelectB
	SamplerSelectC
)

// SamplerColourTargetsCount is the number of SamplerColourTargets values.
const SamplerColourTargetsCount = 3

var samplerColourTargetsTable = newEnum[SamplerColourTargets]("SamplerColourTargets", SamplerColourTargetsCount,
	"SamplerSelectA", "SamplerSelectB", "SamplerSelectC",
)

func (s SamplerColourTargets) String() string { return samplerColourTargetsTable.name(s) }

// Valid reports whether s is a declared SamplerColourTargets.
func (s SamplerColourTargets) Valid() bool { return samplerColourTargetsTable.valid(s) }

// MarshalText encodes s as its symbolic name.
func (s SamplerColourTargets) MarshalText() ([]byte, error) { return samplerColourTargetsTable.marshal(s) }

// UnmarshalText accepts only the symbolic names of SamplerColourTargets.
func (s *SamplerColourTargets) UnmarshalText(b []byte) error { return samplerColourTargetsTable.unmarshal(s, b) }

// ParseSamplerColourTargets resolves a symbolic name.
func ParseSamplerColourTargets(s string) (SamplerColourTargets, error) { return samplerColourTargetsTable.parse(s) }

// AllSamplerColourTargets lists every SamplerColourTargets in declaration order.
func AllSamplerColourTargets() []SamplerColourTargets { return samplerColourTargetsTable.all() }

// EncoderColourTargets are the effect encoders' rings.
type EncoderColourTargets uint8

const (
	EncoderReverb EncoderColourTargets = iota
	EncoderEcho
	EncoderPitch
	EncoderGender
)

// EncoderColourTargetsCount is the number of EncoderColourTargets values.
const EncoderColourTargetsCount = 4

var encoderColourTargetsTable = newEnum[EncoderColourTargets]("EncoderColourTargets", EncoderColourTargetsCount,
	"Reverb", "Echo", "Pitch", "Gender",
)

func (e EncoderColourTargets) String() string { return encoderColourTargetsTable.name(e) }

// Valid reports whether e is a declared EncoderColourTargets.
func (e EncoderColourTargets) Valid() bool { return encoderColourTargetsTable.valid(e) }

// MarshalText encodes e as its symbolic name.
func (e EncoderColourTargets) MarshalText() ([]byte, error) { return encoderColourTargetsTable.marshal(e) }

// UnmarshalText accepts only the symbolic names of EncoderColourTargets.
func (e *EncoderColourTargets) UnmarshalText(b []byte) error { return encoderColourTargetsTable.unmarshal(e, b) }

// ParseEncoderColourTargets resolves a symbolic name.
func ParseEncoderColourTargets(s string) (EncoderColourTargets, error) { return encoderColourTargetsTable.parse(s) }

// AllEncoderColourTargets lists every EncoderColourTargets in declaration order.
func AllEncoderColourTargets() []EncoderColourTargets { return encoderColourTargetsTable.all() }
