package transport

import (
	"path/filepath"
	"runtime"
	"sort"

	"go.bug.st/serial"
)

// posixGlobs are the device-name patterns considered a candidate
// programming cable on UNIX-like hosts.
var posixGlobs = []string{
	"/dev/ttyUSB*",
	"/dev/ttyACM*",
	"/dev/ttyS*",
	"/dev/ttyAMA*",
	"/dev/tty.usb*",
	"/dev/cu.usb*",
}

// ListPorts returns the sorted list of candidate serial port device names.
// On Windows, serial.GetPortsList already enumerates via the device
// registry and every returned name is accepted as-is. On POSIX hosts the
// list is filtered to posixGlobs. An empty result is not an error: absence
// of any device is a normal, reportable state.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}

	if runtime.GOOS != "windows" {
		filtered := make([]string, 0, len(ports))
		for _, p := range ports {
			if matchesAny(p, posixGlobs) {
				filtered = append(filtered, p)
			}
		}
		ports = filtered
	}

	sort.Strings(ports)
	return ports, nil
}

func matchesAny(name string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}
