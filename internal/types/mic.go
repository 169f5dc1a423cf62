package types

// Microphone processing chain identifiers.

// MicrophoneType is the kind of microphone plugged into the mixer.
type MicrophoneType uint8

const (
	MicDynamic MicrophoneType = iota
	MicCondenser
	MicJack
)

// MicrophoneTypeCount is the number of MicrophoneType values.
const MicrophoneTypeCount = 3

var microphoneTypeTable = newEnum[MicrophoneType]("MicrophoneType", MicrophoneTypeCount,
	"Dynamic", "Condenser", "Jack",
)

func (m MicrophoneType) String() string { return microphoneTypeTable.name(m) }

// Valid reports whether m is a declared MicrophoneType.
func (m MicrophoneType) Valid() bool { return microphoneTypeTable.valid(m) }

// MarshalText encodes m as its symbolic name.
func (m MicrophoneType) MarshalText() ([]byte, error) { return microphoneTypeTable.marshal(m) }

// UnmarshalText accepts only the symbolic names of MicrophoneType.
func (m *MicrophoneType) UnmarshalText(b []byte) error { return microphoneTypeTable.unmarshal(m, b) }

// ParseMicrophoneType resolves a symbolic name.
func ParseMicrophoneType(s string) (MicrophoneType, error) { return microphoneTypeTable.parse(s) }

// AllMicrophoneTypes lists every MicrophoneType in declaration order.
func AllMicrophoneTypes() []MicrophoneType { return microphoneTypeTable.all() }

// EqFrequencies names the bands of the full equaliser.
type EqFrequencies uint8

const (
	Eq31Hz EqFrequencies = iota
	Eq63Hz
	Eq125Hz
	Eq250Hz
	Eq500Hz
	Eq1KHz
	Eq2KHz
	Eq4KHz
	Eq8KHz
	Eq16KHz
)

// EqFrequenciesCount is the number of EqFrequencies values.
const EqFrequenciesCount = 10

var eqFrequenciesTable = newEnum[EqFrequencies]("EqFrequencies", EqFrequenciesCount,
	"Equalizer31Hz", "Equalizer63Hz", "Equalizer125Hz", "Equalizer250Hz", "Equalizer500Hz",
	"Equalizer1KHz", "Equalizer2KHz", "Equalizer4KHz", "Equalizer8KHz", "Equalizer16KHz",
)

func (e EqFrequencies) String() string { return eqFrequenciesTable.name(e) }

// Valid reports whether e is a declared EqFrequencies.
func (e EqFrequencies) Valid() bool { return eqFrequenciesTable.valid(e) }

// MarshalText encodes e as its symbolic name.
func (e EqFrequencies) MarshalText() ([]byte, error) { return eqFrequenciesTable.marshal(e) }

// UnmarshalText accepts only the symbolic names of EqFrequencies.
func (e *EqFrequencies) UnmarshalText(b []byte) error { return eqFrequenciesTable.unmarshal(e, b) }

// ParseEqFrequencies resolves a symbolic name.
func ParseEqFrequencies(s string) (EqFrequencies, error) { return eqFrequenciesTable.parse(s) }

// AllEqFrequencies lists every EqFrequencies in declaration order.
func AllEqFrequencies() []EqFrequencies { return eqFrequenciesTable.all() }

// MiniEqFrequencies names the bands of the reduced equaliser.
type MiniEqFrequencies uint8

const (
	MiniEq90Hz MiniEqFrequencies = iota
	MiniEq250Hz
	MiniEq500Hz
	MiniEq1KHz
	MiniEq3KHz
	MiniEq8KHz
)

// MiniEqFrequenciesCount is the number of MiniEqFrequencies values.
const MiniEqFrequenciesCount = 6

var miniEqFrequenciesTable = newEnum[MiniEqFrequencies]("MiniEqFrequencies", MiniEqFrequenciesCount,
	"Equalizer90Hz", "Equalizer250Hz", "Equalizer500Hz", "Equalizer1KHz", "Equalizer3KHz",
	"Equalizer8KHz",
)

func (m MiniEqFrequencies) String() string { return miniEqFrequenciesTable.name(m) }

// Valid reports whether m is a declared MiniEqFrequencies.
func (m MiniEqFrequencies) Valid() bool { return miniEqFrequenciesTable.valid(m) }

// MarshalText encodes m as its symbolic name.
func (m MiniEqFrequencies) MarshalText() ([]byte, error) { return miniEqFrequenciesTable.marshal(m) }

// UnmarshalText accepts only the symbolic names of MiniEqFrequencies.
func (m *MiniEqFrequencies) UnmarshalText(b []byte) error { return miniEqFrequenciesTable.unmarshal(m, b) }

// ParseMiniEqFrequencies resolves a symbolic name.
func ParseMiniEqFrequencies(s string) (MiniEqFrequencies, error) { return miniEqFrequenciesTable.parse(s) }

// AllMiniEqFrequencies lists every MiniEqFrequencies in declaration order.
func AllMiniEqFrequencies() []MiniEqFrequencies { return miniEqFrequenciesTable.all() }

// GateTimes are the attack and release steps of the noise gate.
type GateTimes uint8

const (
	Gate10ms GateTimes = iota
	Gate20ms
	Gate30ms
	Gate40ms
	Gate50ms
	Gate60ms
	Gate70ms
	Gate80ms
	Gate90ms
	Gate100ms
	Gate110ms
	Gate120ms
	Gate130ms
	Gate140ms
	Gate150ms
	Gate160ms
	Gate170ms
	Gate180ms
	Gate190ms
	Gate200ms
	Gate250ms
	Gate300ms
	Gate350ms
	Gate400ms
	Gate450ms
	Gate500ms
	Gate550ms
	Gate600ms
	Gate650ms
	Gate700ms
	Gate750ms
	Gate800ms
	Gate850ms
	Gate900ms
	Gate950ms
	Gate1000ms
	Gate1100ms
	Gate1200ms
	Gate1300ms
	Gate1400ms
	Gate1500ms
	Gate1600ms
	Gate1700ms
	Gate1800ms
	Gate1900ms
	Gate2000ms
)

// GateTimesCount is the number of GateTimes values.
const GateTimesCount = 46

var gateTimesTable = newEnum[GateTimes]("GateTimes", GateTimesCount,
	"Gate10ms", "Gate20ms", "Gate30ms", "Gate40ms", "Gate50ms", "Gate60ms", "Gate70ms",
	"Gate80ms", "Gate90ms", "Gate100ms", "Gate110ms", "Gate120ms", "Gate130ms", "Gate140ms",
	"Gate150ms", "Gate160ms", "Gate170ms", "Gate180ms", "Gate190ms", "Gate200ms",
	"Gate250ms", "Gate300ms", "Gate350ms", "Gate400ms", "Gate450ms", "Gate500ms",
	"Gate550ms", "Gate600ms", "Gate650ms", "Gate700ms", "Gate750ms", "Gate800ms",
	"Gate850ms", "Gate900ms", "Gate950ms", "Gate1000ms", "Gate1100ms", "Gate1200ms",
	"Gate1300ms", "Gate1400ms", "Gate1500ms", "Gate1600ms", "Gate1700ms", "Gate1800ms",
	"Gate1900ms", "Gate2000ms",
)

func (g GateTimes) String() string { return gateTimesTable.name(g) }

// Valid reports whether g is a declared GateTimes.
func (g GateTimes) Valid() bool { return gateTimesTable.valid(g) }

// MarshalText encodes g as its symbolic name.
func (g GateTimes) MarshalText() ([]byte, error) { return gateTimesTable.marshal(g) }

// UnmarshalText accepts only the symbolic names of GateTimes.
func (g *GateTimes) UnmarshalText(b []byte) error { return gateTimesTable.unmarshal(g, b) }

// ParseGateTimes resolves a symbolic name.
func ParseGateTimes(s string) (GateTimes, error) { return gateTimesTable.parse(s) }

// AllGateTimes lists every GateTimes in declaration order.
func AllGateTimes() []GateTimes { return gateTimesTable.all() }

// CompressorRatio is the compression ratio step.
type CompressorRatio uint8

const (
	Ratio1_0 CompressorRatio = iota
	Ratio1_1
	Ratio1_2
	Ratio1_4
	Ratio1_6
	Ratio1_8
	Ratio2_0
	Ratio2_5
	Ratio3_2
	Ratio4_0
	Ratio5_6
	Ratio8_0
	Ratio16_0
	Ratio32_0
	Ratio64_0
)

// CompressorRatioCount is the number of CompressorRatio values.
const CompressorRatioCount = 15

var compressorRatioTable = newEnum[CompressorRatio]("CompressorRatio", CompressorRatioCount,
	"Ratio1_0", "Ratio1_1", "Ratio1_2", "Ratio1_4", "Ratio1_6", "Ratio1_8", "Ratio2_0",
	"Ratio2_5", "Ratio3_2", "Ratio4_0", "Ratio5_6", "Ratio8_0", "Ratio16_0", "Ratio32_0",
	"Ratio64_0",
)

func (c CompressorRatio) String() string { return compressorRatioTable.name(c) }

// Valid reports whether c is a declared CompressorRatio.
func (c CompressorRatio) Valid() bool { return compressorRatioTable.valid(c) }

// MarshalText encodes c as its symbolic name.
func (c CompressorRatio) MarshalText() ([]byte, error) { return compressorRatioTable.marshal(c) }

// UnmarshalText accepts only the symbolic names of CompressorRatio.
func (c *CompressorRatio) UnmarshalText(b []byte) error { return compressorRatioTable.unmarshal(c, b) }

// ParseCompressorRatio resolves a symbolic name.
func ParseCompressorRatio(s string) (CompressorRatio, error) { return compressorRatioTable.parse(s) }

// AllCompressorRatios lists every CompressorRatio in declaration order.
func AllCompressorRatios() []CompressorRatio { return compressorRatioTable.all() }

// CompressorAttackTime is the compressor attack step.
type CompressorAttackTime uint8

const (
	Attack0ms CompressorAttackTime = iota
	Attack2ms
	Attack3ms
	Attack4ms
	Attack5ms
	Attack6ms
	Attack7ms
	Attack8ms
	Attack9ms
	Attack10ms
	Attack12ms
	Attack14ms
	Attack16ms
	Attack18ms
	Attack20ms
	Attack23ms
	Attack26ms
	Attack30ms
	Attack35ms
	Attack40ms
)

// CompressorAttackTimeCount is the number of CompressorAttackTime values.
const CompressorAttackTimeCount = 20

var compressorAttackTimeTable = newEnum[CompressorAttackTime]("CompressorAttackTime", CompressorAttackTimeCount,
	"Comp0ms", "Comp2ms", "Comp3ms", "Comp4ms", "Comp5ms", "Comp6ms", "Comp7ms", "Comp8ms",
	"Comp9ms", "Comp10ms", "Comp12ms", "Comp14ms", "Comp16ms", "Comp18ms", "Comp20ms",
	"Comp23ms", "Comp26ms", "Comp30ms", "Comp35ms", "Comp40ms",
)

func (c CompressorAttackTime) String() string { return compressorAttackTimeTable.name(c) }

// Valid reports whether c is a declared CompressorAttackTime.
func (c CompressorAttackTime) Valid() bool { return compressorAttackTimeTable.valid(c) }

// MarshalText encodes c as its symbolic name.
func (c CompressorAttackTime) MarshalText() ([]byte, error) { return compressorAttackTimeTable.marshal(c) }

// UnmarshalText accepts only the symbolic names of CompressorAttackTime.
func (c *CompressorAttackTime) UnmarshalText(b []byte) error { return compressorAttackTimeTable.unmarshal(c, b) }

// ParseCompressorAttackTime resolves a symbolic name.
func ParseCompressorAttackTime(s string) (CompressorAttackTime, error) { return compressorAttackTimeTable.parse(s) }

// AllCompressorAttackTimes lists every CompressorAttackTime in declaration order.
func AllCompressorAttackTimes() []CompressorAttackTime { return compressorAttackTimeTable.all() }

// CompressorReleaseTime is the compressor release step.
type CompressorReleaseTime uint8

const (
	Release0ms CompressorReleaseTime = iota
	Release15ms
	Release25ms
	Release35ms
	Release45ms
	Release55ms
	Release65ms
	Release75ms
	Release85ms
	Release100ms
	Release115ms
	Release140ms
	Release170ms
	Release230ms
	Release340ms
	Release680ms
	Release1000ms
	Release1500ms
	Release2500ms
	Release3000ms
)

// CompressorReleaseTimeCount is the number of CompressorReleaseTime values.
const CompressorReleaseTimeCount = 20

var compressorReleaseTimeTable = newEnum[CompressorReleaseTime]("CompressorReleaseTime", CompressorReleaseTimeCount,
	"Comp0ms", "Comp15ms", "Comp25ms", "Comp35ms", "Comp45ms", "Comp55ms", "Comp65ms",
	"Comp75ms", "Comp85ms", "Comp100ms", "Comp115ms", "Comp140ms", "Comp170ms", "Comp230ms",
	"Comp340ms", "Comp680ms", "Comp1000ms", "Comp1500ms", "Comp2500ms", "Comp3000ms",
)

func (c CompressorReleaseTime) String() string { return compressorReleaseTimeTable.name(c) }

// Valid reports whether c is a declared CompressorReleaseTime.
func (c CompressorReleaseTime) Valid() bool { return compressorReleaseTimeTable.valid(c) }

// MarshalText encodes c as its symbolic name.
func (c CompressorReleaseTime) MarshalText() ([]byte, error) { return compressorReleaseTimeTable.marshal(c) }

// UnmarshalText accepts only the symbolic names of CompressorReleaseTime.
func (c *CompressorReleaseTime) UnmarshalText(b []byte) error { return compressorReleaseTimeTable.unmarshal(c, b) }

// ParseCompressorReleaseTime resolves a symbolic name.
func ParseCompressorReleaseTime(s string) (CompressorReleaseTime, error) { return compressorReleaseTimeTable.parse(s) }

// AllCompressorReleaseTimes lists every CompressorReleaseTime in declaration order.
func AllCompressorReleaseTimes() []CompressorReleaseTime { return compressorReleaseTimeTable.all() }
