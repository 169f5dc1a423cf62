package types

// Device identity and physical layout identifiers.

// DeviceType is the hardware capability tier of an attached mixer.
type DeviceType uint8

const (
	DeviceTypeUnknown DeviceType = iota
	DeviceTypeFull
	DeviceTypeMini
)

// DeviceTypeCount is the number of DeviceType values.
const DeviceTypeCount = 3

var deviceTypeTable = newEnum[DeviceType]("DeviceType", DeviceTypeCount,
	"Unknown", "Full", "Mini",
)

func (d DeviceType) String() string { return deviceTypeTable.name(d) }

// Valid reports whether d is a declared DeviceType.
func (d DeviceType) Valid() bool { return deviceTypeTable.valid(d) }

// MarshalText encodes d as its symbolic name.
func (d DeviceType) MarshalText() ([]byte, error) { return deviceTypeTable.marshal(d) }

// UnmarshalText accepts only the symbolic names of DeviceType.
func (d *DeviceType) UnmarshalText(b []byte) error { return deviceTypeTable.unmarshal(d, b) }

// ParseDeviceType resolves a symbolic name.
func ParseDeviceType(s string) (DeviceType, error) { return deviceTypeTable.parse(s) }

// AllDeviceTypes lists every DeviceType in declaration order.
func AllDeviceTypes() []DeviceType { return deviceTypeTable.all() }

// FaderName identifies one physical fader slot.
type FaderName uint8

const (
	FaderA FaderName = iota
	FaderB
	FaderC
	FaderD
)

// FaderNameCount is the number of FaderName values.
const FaderNameCount = 4

var faderNameTable = newEnum[FaderName]("FaderName", FaderNameCount,
	"A", "B", "C", "D",
)

func (f FaderName) String() string { return faderNameTable.name(f) }

// Valid reports whether f is a declared FaderName.
func (f FaderName) Valid() bool { return faderNameTable.valid(f) }

// MarshalText encodes f as its symbolic name.
func (f FaderName) MarshalText() ([]byte, error) { return faderNameTable.marshal(f) }

// UnmarshalText accepts only the symbolic names of FaderName.
func (f *FaderName) UnmarshalText(b []byte) error { return faderNameTable.unmarshal(f, b) }

// ParseFaderName resolves a symbolic name.
func ParseFaderName(s string) (FaderName, error) { return faderNameTable.parse(s) }

// AllFaderNames lists every FaderName in declaration order.
func AllFaderNames() []FaderName { return faderNameTable.all() }

// ChannelName identifies a logical audio path with its own volume.
type ChannelName uint8

const (
	ChannelMic ChannelName = iota
	ChannelLineIn
	ChannelConsole
	ChannelSystem
	ChannelGame
	ChannelChat
	ChannelSample
	ChannelMusic
	ChannelHeadphones
	ChannelMicMonitor
	ChannelLineOut
)

// ChannelNameCount is the number of ChannelName values.
const ChannelNameCount = 11

var channelNameTable = newEnum[ChannelName]("ChannelName", ChannelNameCount,
	"Mic", "LineIn", "Console", "System", "Game", "Chat", "Sample", "Music", "Headphones",
	"MicMonitor", "LineOut",
)

func (c ChannelName) String() string { return channelNameTable.name(c) }

// Valid reports whether c is a declared ChannelName.
func (c ChannelName) Valid() bool { return channelNameTable.valid(c) }

// MarshalText encodes c as its symbolic name.
func (c ChannelName) MarshalText() ([]byte, error) { return channelNameTable.marshal(c) }

// UnmarshalText accepts only the symbolic names of ChannelName.
func (c *ChannelName) UnmarshalText(b []byte) error { return channelNameTable.unmarshal(c, b) }

// ParseChannelName resolves a symbolic name.
func ParseChannelName(s string) (ChannelName, error) { return channelNameTable.parse(s) }

// AllChannelNames lists every ChannelName in declaration order.
func AllChannelNames() []ChannelName { return channelNameTable.all() }

// InputDevice is a routing source.
type InputDevice uint8

const (
	InputMicrophone InputDevice = iota
	InputChat
	InputMusic
	InputGame
	InputConsole
	InputLineIn
	InputSystem
	InputSamples
)

// InputDeviceCount is the number of InputDevice values.
const InputDeviceCount = 8

var inputDeviceTable = newEnum[InputDevice]("InputDevice", InputDeviceCount,
	"Microphone", "Chat", "Music", "Game", "Console", "LineIn", "System", "Samples",
)

func (i InputDevice) String() string { return inputDeviceTable.name(i) }

// Valid reports whether i is a declared InputDevice.
func (i InputDevice) Valid() bool { return inputDeviceTable.valid(i) }

// MarshalText encodes i as its symbolic name.
func (i InputDevice) MarshalText() ([]byte, error) { return inputDeviceTable.marshal(i) }

// UnmarshalText accepts only the symbolic names of InputDevice.
func (i *InputDevice) UnmarshalText(b []byte) error { return inputDeviceTable.unmarshal(i, b) }

// ParseInputDevice resolves a symbolic name.
func ParseInputDevice(s string) (InputDevice, error) { return inputDeviceTable.parse(s) }

// AllInputDevices lists every InputDevice in declaration order.
func AllInputDevices() []InputDevice { return inputDeviceTable.all() }

// OutputDevice is a routing destination.
type OutputDevice uint8

const (
	OutputHeadphones OutputDevice = iota
	OutputBroadcastMix
	OutputLineOut
	OutputChatMic
	OutputSampler
)

// OutputDeviceCount is the number of OutputDevice values.
const OutputDeviceCount = 5

var outputDeviceTable = newEnum[OutputDevice]("OutputDevice", OutputDeviceCount,
	"Headphones", "BroadcastMix", "LineOut", "ChatMic", "Sampler",
)

func (o OutputDevice) String() string { return outputDeviceTable.name(o) }

// Valid reports whether o is a declared OutputDevice.
func (o OutputDevice) Valid() bool { return outputDeviceTable.valid(o) }

// MarshalText encodes o as its symbolic name.
func (o OutputDevice) MarshalText() ([]byte, error) { return outputDeviceTable.marshal(o) }

// UnmarshalText accepts only the symbolic names of OutputDevice.
func (o *OutputDevice) UnmarshalText(b []byte) error { return outputDeviceTable.unmarshal(o, b) }

// ParseOutputDevice resolves a symbolic name.
func ParseOutputDevice(s string) (OutputDevice, error) { return outputDeviceTable.parse(s) }

// AllOutputDevices lists every OutputDevice in declaration order.
func AllOutputDevices() []OutputDevice { return outputDeviceTable.all() }

// MuteFunction selects which outputs a mute button silences.
type MuteFunction uint8

const (
	MuteAll MuteFunction = iota
	MuteToStream
	MuteToVoiceChat
	MuteToPhones
	MuteToLineOut
)

// MuteFunctionCount is the number of MuteFunction values.
const MuteFunctionCount = 5

var muteFunctionTable = newEnum[MuteFunction]("MuteFunction", MuteFunctionCount,
	"All", "ToStream", "ToVoiceChat", "ToPhones", "ToLineOut",
)

func (m MuteFunction) String() string { return muteFunctionTable.name(m) }

// Valid reports whether m is a declared MuteFunction.
func (m MuteFunction) Valid() bool { return muteFunctionTable.valid(m) }

// MarshalText encodes m as its symbolic name.
func (m MuteFunction) MarshalText() ([]byte, error) { return muteFunctionTable.marshal(m) }

// UnmarshalText accepts only the symbolic names of MuteFunction.
func (m *MuteFunction) UnmarshalText(b []byte) error { return muteFunctionTable.unmarshal(m, b) }

// ParseMuteFunction resolves a symbolic name.
func ParseMuteFunction(s string) (MuteFunction, error) { return muteFunctionTable.parse(s) }

// AllMuteFunctions lists every MuteFunction in declaration order.
func AllMuteFunctions() []MuteFunction { return muteFunctionTable.all() }
