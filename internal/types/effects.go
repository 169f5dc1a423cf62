package types

// Effect presets and styles.

// EffectBankPresets identifies one of the stored effect presets.
type EffectBankPresets uint8

const (
	Preset1 EffectBankPresets = iota
	Preset2
	Preset3
	Preset4
	Preset5
	Preset6
)

// EffectBankPresetsCount is the number of EffectBankPresets values.
const EffectBankPresetsCount = 6

var effectBankPresetsTable = newEnum[EffectBankPresets]("EffectBankPresets", EffectBankPresetsCount,
	"Preset1", "Preset2", "Preset3", "Preset4", "Preset5", "Preset6",
)

func (e EffectBankPresets) String() string { return effectBankPresetsTable.name(e) }

// Valid reports whether e is a declared EffectBankPresets.
func (e EffectBankPresets) Valid() bool { return effectBankPresetsTable.valid(e) }

// MarshalText encodes e as its symbolic name.
func (e EffectBankPresets) MarshalText() ([]byte, error) { return effectBankPresetsTable.marshal(e) }

// UnmarshalText accepts only the symbolic names of EffectBankPresets.
func (e *EffectBankPresets) UnmarshalText(b []byte) error { return effectBankPresetsTable.unmarshal(e, b) }

// ParseEffectBankPresets resolves a symbolic name.
func ParseEffectBankPresets(s string) (EffectBankPresets, error) { return effectBankPresetsTable.parse(s) }

// AllEffectBankPresets lists every EffectBankPresets in declaration order.
func AllEffectBankPresets() []EffectBankPresets { return effectBankPresetsTable.all() }

// ReverbStyle is the reverb algorithm.
type ReverbStyle uint8

const (
	ReverbLibrary ReverbStyle = iota
	ReverbDarkBloom
	ReverbMusicClub
	ReverbRealPlate
	ReverbChapel
	ReverbHockeyArena
)

// ReverbStyleCount is the number of ReverbStyle values.
const ReverbStyleCount = 6

var reverbStyleTable = newEnum[ReverbStyle]("ReverbStyle", ReverbStyleCount,
	"Library", "DarkBloom", "MusicClub", "RealPlate", "Chapel", "HockeyArena",
)

func (r ReverbStyle) String() string { return reverbStyleTable.name(r) }

// Valid reports whether r is a declared ReverbStyle.
func (r ReverbStyle) Valid() bool { return reverbStyleTable.valid(r) }

// MarshalText encodes r as its symbolic name.
func (r ReverbStyle) MarshalText() ([]byte, error) { return reverbStyleTable.marshal(r) }

// UnmarshalText accepts only the symbolic names of ReverbStyle.
func (r *ReverbStyle) UnmarshalText(b []byte) error { return reverbStyleTable.unmarshal(r, b) }

// ParseReverbStyle resolves a symbolic name.
func ParseReverbStyle(s string) (ReverbStyle, error) { return reverbStyleTable.parse(s) }

// AllReverbStyles lists every ReverbStyle in declaration order.
func AllReverbStyles() []ReverbStyle { return reverbStyleTable.all() }

// EchoStyle is the echo pattern.
type EchoStyle uint8

const (
	EchoQuarter EchoStyle = iota
	EchoEighth
	EchoTriplet
	EchoPingPong
	EchoClassicSlap
	EchoMultiTap
)

// EchoStyleCount is the number of EchoStyle values.
const EchoStyleCount = 6

var echoStyleTable = newEnum[EchoStyle]("EchoStyle", EchoStyleCount,
	"Quarter", "Eighth", "Triplet", "PingPong", "ClassicSlap", "MultiTap",
)

func (e EchoStyle) String() string { return echoStyleTable.name(e) }

// Valid reports whether e is a declared EchoStyle.
func (e EchoStyle) Valid() bool { return echoStyleTable.valid(e) }

// MarshalText encodes e as its symbolic name.
func (e EchoStyle) MarshalText() ([]byte, error) { return echoStyleTable.marshal(e) }

// UnmarshalText accepts only the symbolic names of EchoStyle.
func (e *EchoStyle) UnmarshalText(b []byte) error { return echoStyleTable.unmarshal(e, b) }

// ParseEchoStyle resolves a symbolic name.
func ParseEchoStyle(s string) (EchoStyle, error) { return echoStyleTable.parse(s) }

// AllEchoStyles lists every EchoStyle in declaration order.
func AllEchoStyles() []EchoStyle { return echoStyleTable.all() }

// PitchStyle is the pitch shift range.
type PitchStyle uint8

const (
	PitchNarrow PitchStyle = iota
	PitchWide
)

// PitchStyleCount is the number of PitchStyle values.
const PitchStyleCount = 2

var pitchStyleTable = newEnum[PitchStyle]("PitchStyle", PitchStyleCount,
	"Narrow", "Wide",
)

func (p PitchStyle) String() string { return pitchStyleTable.name(p) }

// Valid reports whether p is a declared PitchStyle.
func (p PitchStyle) Valid() bool { return pitchStyleTable.valid(p) }

// MarshalText encodes p as its symbolic name.
func (p PitchStyle) MarshalText() ([]byte, error) { return pitchStyleTable.marshal(p) }

// UnmarshalText accepts only the symbolic names of PitchStyle.
func (p *PitchStyle) UnmarshalText(b []byte) error { return pitchStyleTable.unmarshal(p, b) }

// ParsePitchStyle resolves a symbolic name.
func ParsePitchStyle(s string) (PitchStyle, error) { return pitchStyleTable.parse(s) }

// AllPitchStyles lists every PitchStyle in declaration order.
func AllPitchStyles() []PitchStyle { return pitchStyleTable.all() }

// GenderStyle is the gender shift range.
type GenderStyle uint8

const (
	GenderNarrow GenderStyle = iota
	GenderMedium
	GenderWide
)

// GenderStyleCount is the number of GenderStyle values.
const GenderStyleCount = 3

var genderStyleTable = newEnum[GenderStyle]("GenderStyle", GenderStyleCount,
	"Narrow", "Medium", "Wide",
)

func (g GenderStyle) String() string { return genderStyleTable.name(g) }

// Valid reports whether g is a declared GenderStyle.
func (g GenderStyle) Valid() bool { return genderStyleTable.valid(g) }

// MarshalText encodes g as its symbolic name.
func (g GenderStyle) MarshalText() ([]byte, error) { return genderStyleTable.marshal(g) }

// UnmarshalText accepts only the symbolic names of GenderStyle.
func (g *GenderStyle) UnmarshalText(b []byte) error { return genderStyleTable.unmarshal(g, b) }

// ParseGenderStyle resolves a symbolic name.
func ParseGenderStyle(s string) (GenderStyle, error) { return genderStyleTable.parse(s) }

// AllGenderStyles lists every GenderStyle in declaration order.
func AllGenderStyles() []GenderStyle { return genderStyleTable.all() }

// MegaphoneStyle is the megaphone colouring.
type MegaphoneStyle uint8

const (
	MegaphoneMegaphone MegaphoneStyle = iota
	MegaphoneRadio
	MegaphoneOnThePhone
	MegaphoneOverdrive
	MegaphoneBuzzCutt
	MegaphoneTweed
)

// MegaphoneStyleCount is the number of MegaphoneStyle values.
const MegaphoneStyleCount = 6

var megaphoneStyleTable = newEnum[MegaphoneStyle]("MegaphoneStyle", MegaphoneStyleCount,
	"Megaphone", "Radio", "OnThePhone", "Overdrive", "BuzzCutt", "Tweed",
)

func (m MegaphoneStyle) String() string { return megaphoneStyleTable.name(m) }

// Valid reports whether m is a declared MegaphoneStyle.
func (m MegaphoneStyle) Valid() bool { return megaphoneStyleTable.valid(m) }

// MarshalText encodes m as its symbolic name.
func (m MegaphoneStyle) MarshalText() ([]byte, error) { return megaphoneStyleTable.marshal(m) }

// UnmarshalText accepts only the symbolic names of MegaphoneStyle.
func (m *MegaphoneStyle) UnmarshalText(b []byte) error { return megaphoneStyleTable.unmarshal(m, b) }

// ParseMegaphoneStyle resolves a symbolic name.
func ParseMegaphoneStyle(s string) (MegaphoneStyle, error) { return megaphoneStyleTable.parse(s) }

// AllMegaphoneStyles lists every MegaphoneStyle in declaration order.
func AllMegaphoneStyles() []MegaphoneStyle { return megaphoneStyleTable.all() }

// RobotStyle is the robot voice character.
type RobotStyle uint8

const (
	Robot1 RobotStyle = iota
	Robot2
	Robot3
)

// RobotStyleCount is the number of RobotStyle values.
const RobotStyleCount = 3

var robotStyleTable = newEnum[RobotStyle]("RobotStyle", RobotStyleCount,
	"Robot1", "Robot2", "Robot3",
)

func (r RobotStyle) String() string { return robotStyleTable.name(r) }

// Valid reports whether r is a declared RobotStyle.
func (r RobotStyle) Valid() bool { return robotStyleTable.valid(r) }

// MarshalText encodes r as its symbolic name.
func (r RobotStyle) MarshalText() ([]byte, error) { return robotStyleTable.marshal(r) }

// UnmarshalText accepts only the symbolic names of RobotStyle.
func (r *RobotStyle) UnmarshalText(b []byte) error { return robotStyleTable.unmarshal(r, b) }

// ParseRobotStyle resolves a symbolic name.
func ParseRobotStyle(s string) (RobotStyle, error) { return robotStyleTable.parse(s) }

// AllRobotStyles lists every RobotStyle in declaration order.
func AllRobotStyles() []RobotStyle { return robotStyleTable.all() }

// HardTuneStyle is the hard-tune correction strength.
type HardTuneStyle uint8

const (
	HardTuneNatural HardTuneStyle = iota
	HardTuneMedium
	HardTuneHard
)

// HardTuneStyleCount is the number of HardTuneStyle values.
const HardTuneStyleCount = 3

var hardTuneStyleTable = newEnum[HardTuneStyle]("HardTuneStyle", HardTuneStyleCount,
	"Natural", "Medium", "Hard",
)

func (h HardTuneStyle) String() string { return hardTuneStyleTable.name(h) }

// Valid reports whether h is a declared HardTuneStyle.
func (h HardTuneStyle) Valid() bool { return hardTuneStyleTable.valid(h) }

// MarshalText encodes h as its symbolic name.
func (h HardTuneStyle) MarshalText() ([]byte, error) { return hardTuneStyleTable.marshal(h) }

// UnmarshalText accepts only the symbolic names of HardTuneStyle.
func (h *HardTuneStyle) UnmarshalText(b []byte) error { return hardTuneStyleTable.unmarshal(h, b) }

// ParseHardTuneStyle resolves a symbolic name.
func ParseHardTuneStyle(s string) (HardTuneStyle, error) { return hardTuneStyleTable.parse(s) }

// AllHardTuneStyles lists every HardTuneStyle in declaration order.
func AllHardTuneStyles() []HardTuneStyle { return hardTuneStyleTable.all() }

// HardTuneSource is the signal hard-tune follows for key detection.
type HardTuneSource uint8

const (
	HardTuneSourceAll HardTuneSource = iota
	HardTuneSourceMusic
	HardTuneSourceGame
	HardTuneSourceLineIn
	HardTuneSourceSystem
)

// HardTuneSourceCount is the number of HardTuneSource values.
const HardTuneSourceCount = 5

var hardTuneSourceTable = newEnum[HardTuneSource]("HardTuneSource", HardTuneSourceCount,
	"All", "Music", "Game", "LineIn", "System",
)

func (h HardTuneSource) String() string { return hardTuneSourceTable.name(h) }

// Valid reports whether h is a declared HardTuneSource.
func (h HardTuneSource) Valid() bool { return hardTuneSourceTable.valid(h) }

// MarshalText encodes h as its symbolic name.
func (h HardTuneSource) MarshalText() ([]byte, error) { return hardTuneSourceTable.marshal(h) }

// UnmarshalText accepts only the symbolic names of HardTuneSource.
func (h *HardTuneSource) UnmarshalText(b []byte) error { return hardTuneSourceTable.unmarshal(h, b) }

// ParseHardTuneSource resolves a symbolic name.
func ParseHardTuneSource(s string) (HardTuneSource, error) { return hardTuneSourceTable.parse(s) }

// AllHardTuneSources lists every HardTuneSource in declaration order.
func AllHardTuneSources() []HardTuneSource { return hardTuneSourceTable.all() }
