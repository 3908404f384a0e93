package device

import (
	"errors"
	"strings"
	"testing"
)

const testReport = `{
  "SPUSBDataType": [
    {
      "_name": "USB31Bus",
      "_items": [
        {
          "_name": "USB3.1 Hub",
          "vendor_id": "0x2109  (VIA Labs, Inc.)",
          "product_id": "0x0817",
          "manufacturer": "VIA Labs, Inc.",
          "_items": [
            {
              "_name": "Razer Naga V2 HyperSpeed",
              "vendor_id": "0x1532  (Razer USA Ltd.)",
              "product_id": "0x00b4",
              "manufacturer": "Razer"
            }
          ]
        },
        {
          "_name": "Magic Keyboard",
          "vendor_id": "apple_vendor_id",
          "product_id": "0x029c"
        }
      ]
    },
    {
      "_name": "USB30Bus"
    }
  ]
}`

func TestParse(t *testing.T) {
	devices, err := Parse([]byte(testReport))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	// The hub, the mouse; the keyboard has no parseable vendor id and the
	// bare bus carries no ids at all.
	if len(devices) != 2 {
		t.Fatalf("Parse() found %d devices, want 2: %+v", len(devices), devices)
	}

	hub := devices[0]
	if hub.VendorID != 0x2109 || hub.ProductID != 0x0817 {
		t.Errorf("hub ids = %04x/%04x", hub.VendorID, hub.ProductID)
	}

	mouse := devices[1]
	if mouse.Name != "Razer Naga V2 HyperSpeed" {
		t.Errorf("mouse name = %q", mouse.Name)
	}
	if mouse.VendorID != 0x1532 || mouse.ProductID != 0x00b4 {
		t.Errorf("mouse ids = %04x/%04x", mouse.VendorID, mouse.ProductID)
	}
	if mouse.Manufacturer != "Razer" {
		t.Errorf("mouse manufacturer = %q", mouse.Manufacturer)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Parse() accepted malformed JSON")
	}
}

func TestParseEmptyReport(t *testing.T) {
	devices, err := Parse([]byte(`{"SPUSBDataType": []}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("devices = %+v, want none", devices)
	}
}

func TestParseHexID(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"0x1532  (Razer USA Ltd.)", 0x1532, true},
		{"0x00b4", 0x00b4, true},
		{"0x0000", 0, true},
		{"apple_vendor_id", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseHexID(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseHexID(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFindByName(t *testing.T) {
	devices, err := Parse([]byte(testReport))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	d, err := FindByName(devices, "naga")
	if err != nil {
		t.Fatalf("FindByName() error: %v", err)
	}
	if d.VendorID != 0x1532 {
		t.Errorf("FindByName(naga) = %+v", d)
	}

	if _, err := FindByName(devices, "trackball"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByName(trackball) error = %v, want ErrNotFound", err)
	}
}

func TestTable(t *testing.T) {
	devices := []Device{{Name: "Razer Naga", VendorID: 0x1532, ProductID: 0x00b4, Manufacturer: "Razer"}}
	out := Table(devices)

	if !strings.Contains(out, "Razer Naga") || !strings.Contains(out, "0x1532") {
		t.Errorf("Table() output missing device row:\n%s", out)
	}
	if !strings.Contains(out, "DEVICE NAME") {
		t.Errorf("Table() output missing header:\n%s", out)
	}
}
