package system

import "strings"

// closeBinaryThresholdAU splits binaries into close/distant by the
// outermost planet's separation. Purely cosmetic: real companion
// separations are not in the catalog.
const closeBinaryThresholdAU = 5.0

// detectBinary decides from the host-star name whether the system is a
// stellar binary. Two naming conventions count: a space-separated trailing
// "A" or "B" ("HD 189733 A"), or an attached uppercase designation on a
// base name longer than three characters ("Kepler-16B"). Best-effort over
// naming convention only; lowercase planet letters never match.
func detectBinary(host string) (bool, string) {
	fields := strings.Fields(host)
	if len(fields) >= 2 {
		switch fields[len(fields)-1] {
		case "A":
			return true, "B"
		case "B":
			return true, "A"
		}
	}

	if len(host) > 4 {
		switch host[len(host)-1] {
		case 'A':
			return true, "B"
		case 'B':
			return true, "A"
		}
	}

	return false, ""
}
