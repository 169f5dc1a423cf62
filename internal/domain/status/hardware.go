package status

import "github.com/edumarques81/mixerd/internal/types"

// HardwareStatus is the identity of an attached device. It is filled in first
// when a device attaches and decides which variant defaults are applied.
type HardwareStatus struct {
	Versions         types.FirmwareVersions `json:"versions"`
	SerialNumber     string                 `json:"serial_number"`
	ManufacturedDate string                 `json:"manufactured_date"`
	DeviceType       types.DeviceType       `json:"device_type"`
	USBDevice        USBProductInformation  `json:"usb_device"`
}

// USBProductInformation is the USB descriptor of the device.
type USBProductInformation struct {
	ManufacturerName string   `json:"manufacturer_name"`
	ProductName      string   `json:"product_name"`
	Version          [3]uint8 `json:"version"`
	BusNumber        uint8    `json:"bus_number"`
	Address          uint8    `json:"address"`
	Identifier       *string  `json:"identifier,omitempty"`
}
