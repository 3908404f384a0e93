// Package device discovers connected USB input hardware so blueprints can
// be pinned to a vendor/product id pair.
//
// Discovery shells out to the macOS system_profiler tool and flattens its
// USB tree. Vendor and product ids arrive as strings like
// "0x1532  (Razer USA Ltd.)" and are reduced to their hex literal before
// parsing.
package device

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Errors returned by device discovery.
var (
	// ErrScanFailed indicates system_profiler could not be run.
	ErrScanFailed = errors.New("device scan failed")

	// ErrNotFound indicates no connected device matched.
	ErrNotFound = errors.New("device not found")
)

// Device is one discovered USB device.
type Device struct {
	Name         string
	VendorID     int
	ProductID    int
	Manufacturer string
}

// String formats the device for log output.
func (d Device) String() string {
	return fmt.Sprintf("%s (vendor 0x%04x, product 0x%04x)", d.Name, d.VendorID, d.ProductID)
}

// usbNode is one node of the system_profiler USB tree. Hubs carry their
// children in _items.
type usbNode struct {
	Name         string    `json:"_name"`
	VendorID     string    `json:"vendor_id"`
	ProductID    string    `json:"product_id"`
	Manufacturer string    `json:"manufacturer"`
	Items        []usbNode `json:"_items"`
}

// usbReport is the top-level system_profiler document.
type usbReport struct {
	Controllers []usbNode `json:"SPUSBDataType"`
}

// hexIDPattern extracts the hex literal from an id string like
// "0x1532  (Razer USA Ltd.)".
var hexIDPattern = regexp.MustCompile(`0x[0-9a-fA-F]+`)

// Scan enumerates connected USB devices via system_profiler.
func Scan(ctx context.Context) ([]Device, error) {
	cmd := exec.CommandContext(ctx, "system_profiler", "SPUSBDataType", "-json")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanFailed, err)
	}
	return Parse(out)
}

// Parse flattens a raw system_profiler JSON report into a device list.
// Nodes without a parseable vendor/product pair (hubs, controllers) are
// skipped; their children are still visited.
func Parse(raw []byte) ([]Device, error) {
	var report usbReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("parsing system_profiler output: %w", err)
	}

	var devices []Device
	for _, controller := range report.Controllers {
		collect(controller, &devices)
	}
	return devices, nil
}

// collect recursively flattens a USB tree node.
func collect(node usbNode, devices *[]Device) {
	if vid, ok := parseHexID(node.VendorID); ok {
		if pid, ok := parseHexID(node.ProductID); ok {
			name := node.Name
			if name == "" {
				name = "Unknown Device"
			}
			*devices = append(*devices, Device{
				Name:         name,
				VendorID:     vid,
				ProductID:    pid,
				Manufacturer: node.Manufacturer,
			})
		}
	}

	for _, child := range node.Items {
		collect(child, devices)
	}
}

// parseHexID reduces an id string to its hex literal and parses it.
func parseHexID(s string) (int, bool) {
	match := hexIDPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(match, "0x"), 16, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// FindByName returns the first device whose name contains the given
// string, case-insensitively.
func FindByName(devices []Device, name string) (Device, error) {
	needle := strings.ToLower(name)
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			return d, nil
		}
	}
	return Device{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Table renders the device list in a copy-paste friendly table.
func Table(devices []Device) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE NAME\tVENDOR\tPRODUCT\tMANUFACTURER")
	for _, d := range devices {
		fmt.Fprintf(w, "%s\t0x%04x (%d)\t0x%04x (%d)\t%s\n",
			d.Name, d.VendorID, d.VendorID, d.ProductID, d.ProductID, d.Manufacturer)
	}
	_ = w.Flush()
	return buf.String()
}
