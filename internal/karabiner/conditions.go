package karabiner

// DefaultLayerValue is the conventional "layer active" value.
const DefaultLayerValue = 1

// Condition is one entry of a manipulator's conditions list. The engine
// treats the list as a logical conjunction, so append order is
// semantically significant only in that conditions never replace one
// another.
type Condition interface {
	isCondition()
}

// DeviceIdentifier is a vendor/product id pair from hardware discovery.
type DeviceIdentifier struct {
	VendorID  int `json:"vendor_id"`
	ProductID int `json:"product_id"`
}

// DeviceCondition restricts a manipulator to specific hardware.
type DeviceCondition struct {
	Type        string             `json:"type"`
	Identifiers []DeviceIdentifier `json:"identifiers"`
}

func (DeviceCondition) isCondition() {}

// NewDeviceCondition returns a device_if condition for one device.
func NewDeviceCondition(vendorID, productID int) DeviceCondition {
	return DeviceCondition{
		Type:        "device_if",
		Identifiers: []DeviceIdentifier{{VendorID: vendorID, ProductID: productID}},
	}
}

// AppCondition restricts a manipulator to frontmost applications whose
// bundle identifier matches one of the patterns.
type AppCondition struct {
	Type              string   `json:"type"`
	BundleIdentifiers []string `json:"bundle_identifiers"`
}

func (AppCondition) isCondition() {}

// VariableCondition requires a named engine variable to hold a value.
type VariableCondition struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (VariableCondition) isCondition() {}

// AddCondition appends a condition to the manipulator. Conditions
// accumulate in call order; nothing is ever replaced.
func (m *Manipulator) AddCondition(c Condition) {
	m.Conditions = append(m.Conditions, c)
}

// AddAppRestriction appends a frontmost_application_if condition matching
// the bundle identifier pattern. No-op if the pattern is empty.
func (m *Manipulator) AddAppRestriction(bundlePattern string) {
	if bundlePattern == "" {
		return
	}
	m.AddCondition(AppCondition{
		Type:              "frontmost_application_if",
		BundleIdentifiers: []string{bundlePattern},
	})
}

// AddLayerCondition appends a variable_if condition requiring the named
// layer variable to equal value. Pass DefaultLayerValue for the usual
// "layer active" check.
func (m *Manipulator) AddLayerCondition(name string, value int) {
	m.AddCondition(VariableCondition{
		Type:  "variable_if",
		Name:  name,
		Value: value,
	})
}
