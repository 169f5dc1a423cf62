package types

// Sampler identifiers.

// SampleBank is one of the sampler's banks.
type SampleBank uint8

const (
	BankA SampleBank = iota
	BankB
	BankC
)

// SampleBankCount is the number of SampleBank values.
const SampleBankCount = 3

var sampleBankTable = newEnum[SampleBank]("SampleBank", SampleBankCount,
	"A", "B", "C",
)

func (s SampleBank) String() string { return sampleBankTable.name(s) }

// Valid reports whether s is a declared SampleBank.
func (s SampleBank) Valid() bool { return sampleBankTable.valid(s) }

// MarshalText encodes s as its symbolic name.
func (s SampleBank) MarshalText() ([]byte, error) { return sampleBankTable.marshal(s) }

// UnmarshalText accepts only the symbolic names of SampleBank.
func (s *SampleBank) UnmarshalText(b []byte) error { return sampleBankTable.unmarshal(s, b) }

// ParseSampleBank resolves a symbolic name.
func ParseSampleBank(s string) (SampleBank, error) { return sampleBankTable.parse(s) }

// AllSampleBanks lists every SampleBank in declaration order.
func AllSampleBanks() []SampleBank { return sampleBankTable.all() }

// SampleButtons is a pad within a sampler bank.
type SampleButtons uint8

const (
	PadTopLeft SampleButtons = iota
	PadTopRight
	PadBottomLeft
	PadBottomRight
)

// SampleButtonsCount is the number of SampleButtons values.
const SampleButtonsCount = 4

var sampleButtonsTable = newEnum[SampleButtons]("SampleButtons", SampleButtonsCount,
	"TopLeft", "TopRight", "BottomLeft", "BottomRight",
)

func (s SampleButtons) String() string { return sampleButtonsTable.name(s) }

// Valid reports whether s is a declared SampleButtons.
func (s SampleButtons) Valid() bool { return sampleButtonsTable.valid(s) }

// MarshalText encodes s as its symbolic name.
func (s SampleButtons) MarshalText() ([]byte, error) { return sampleButtonsTable.marshal(s) }

// UnmarshalText accepts only the symbolic names of SampleButtons.
func (s *SampleButtons) UnmarshalText(b []byte) error { return sampleButtonsTable.unmarshal(s, b) }

// ParseSampleButtons resolves a symbolic name.
func ParseSampleButtons(s string) (SampleButtons, error) { return sampleButtonsTable.parse(s) }

// AllSampleButtons lists every SampleButtons in declaration order.
func AllSampleButtons() []SampleButtons { return sampleButtonsTable.all() }

// SamplePlaybackMode is what pressing a pad does.
type SamplePlaybackMode uint8

const (
	PlaybackPlayNext SamplePlaybackMode = iota
	PlaybackPlayStop
	PlaybackPlayFade
	PlaybackStopOnRelease
	PlaybackFadeOnRelease
	PlaybackLoop
)

// SamplePlaybackModeCount is the number of SamplePlaybackMode values.
const SamplePlaybackModeCount = 6

var samplePlaybackModeTable = newEnum[SamplePlaybackMode]("SamplePlaybackMode", SamplePlaybackModeCount,
	"PlayNext", "PlayStop", "PlayFade", "StopOnRelease", "FadeOnRelease", "Loop",
)

func (s SamplePlaybackMode) String() string { return samplePlaybackModeTable.name(s) }

// Valid reports whether s is a declared SamplePlaybackMode.
func (s SamplePlaybackMode) Valid() bool { return samplePlaybackModeTable.valid(s) }

// MarshalText encodes s as its symbolic name.
func (s SamplePlaybackMode) MarshalText() ([]byte, error) { return samplePlaybackModeTable.marshal(s) }

// UnmarshalText accepts only the symbolic names of SamplePlaybackMode.
func (s *SamplePlaybackMode) UnmarshalText(b []byte) error { return samplePlaybackModeTable.unmarshal(s, b) }

// ParseSamplePlaybackMode resolves a symbolic name.
func ParseSamplePlaybackMode(s string) (SamplePlaybackMode, error) { return samplePlaybackModeTable.parse(s) }

// AllSamplePlaybackModes lists every SamplePlaybackMode in declaration order.
func AllSamplePlaybackModes() []SamplePlaybackMode { return samplePlaybackModeTable.all() }

// SamplePlayOrder picks the next sample of a pad.
type SamplePlayOrder uint8

const (
	OrderSequential SamplePlayOrder = iota
	OrderRandom
)

// SamplePlayOrderCount is the number of SamplePlayOrder values.
const SamplePlayOrderCount = 2

var samplePlayOrderTable = newEnum[SamplePlayOrder]("SamplePlayOrder", SamplePlayOrderCount,
	"Sequential", "Random",
)

func (s SamplePlayOrder) String() string { return samplePlayOrderTable.name(s) }

// Valid reports whether s is a declared SamplePlayOrder.
func (s SamplePlayOrder) Valid() bool { return samplePlayOrderTable.valid(s) }

// MarshalText encodes s as its symbolic name.
func (s SamplePlayOrder) MarshalText() ([]byte, error) { return samplePlayOrderTable.marshal(s) }

// UnmarshalText accepts only the symbolic names of SamplePlayOrder.
func (s *SamplePlayOrder) UnmarshalText(b []byte) error { return samplePlayOrderTable.unmarshal(s, b) }

// ParseSamplePlayOrder resolves a symbolic name.
func ParseSamplePlayOrder(s string) (SamplePlayOrder, error) { return samplePlayOrderTable.parse(s) }

// AllSamplePlayOrders lists every SamplePlayOrder in declaration order.
func AllSamplePlayOrders() []SamplePlayOrder { return samplePlayOrderTable.all() }
