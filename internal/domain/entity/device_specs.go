package entity

// NotAvailable is the placeholder used for every capability field when the lookup fails.
const NotAvailable = "Not available"

// DeviceSpecs holds the network capabilities reported by the device lookup service.
type DeviceSpecs struct {
	Technology string `json:"technology"`
	Bands2G    string `json:"bands2g"`
	Bands3G    string `json:"bands3g"`
	Bands4G    string `json:"bands4g"`
}

// UnavailableSpecs returns the sentinel result substituted for a failed lookup.
func UnavailableSpecs() *DeviceSpecs {
	return &DeviceSpecs{
		Technology: NotAvailable,
		Bands2G:    NotAvailable,
		Bands3G:    NotAvailable,
		Bands4G:    NotAvailable,
	}
}

// PhoneDetails is a phone decorated with the capabilities of its device.
type PhoneDetails struct {
	Phone
	DeviceSpecs
}
