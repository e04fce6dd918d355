package codeplug

import "github.com/zardoz99/rt5d/internal/blocks"

// Unknown call types, algorithms, and other enumerations fall back to
// their documented default rather than erroring, so a document written by
// an older or newer build of this tool still loads.

func callTypeToString(t blocks.CallType) string {
	switch t {
	case blocks.CallTypePrivate:
		return "Private"
	case blocks.CallTypeAllCall:
		return "AllCall"
	default:
		return "Group"
	}
}

func callTypeFromString(s string) blocks.CallType {
	switch s {
	case "Private":
		return blocks.CallTypePrivate
	case "AllCall":
		return blocks.CallTypeAllCall
	default:
		return blocks.CallTypeGroup
	}
}

func algorithmToString(a blocks.Algorithm) string {
	switch a {
	case blocks.AlgorithmAes128:
		return "Aes128"
	case blocks.AlgorithmAes256:
		return "Aes256"
	default:
		return "Arc4"
	}
}

func algorithmFromString(s string) blocks.Algorithm {
	switch s {
	case "Aes128":
		return blocks.AlgorithmAes128
	case "Aes256":
		return blocks.AlgorithmAes256
	default:
		return blocks.AlgorithmArc4
	}
}

func pttIDToString(p blocks.PttID) string {
	switch p {
	case blocks.PttIDBot:
		return "Bot"
	case blocks.PttIDEot:
		return "Eot"
	case blocks.PttIDBoth:
		return "Both"
	default:
		return "Off"
	}
}

func pttIDFromString(s string) blocks.PttID {
	switch s {
	case "Bot":
		return blocks.PttIDBot
	case "Eot":
		return blocks.PttIDEot
	case "Both":
		return blocks.PttIDBoth
	default:
		return blocks.PttIDOff
	}
}

func powerToString(p blocks.Power) string {
	switch p {
	case blocks.PowerMid:
		return "Mid"
	case blocks.PowerHigh:
		return "High"
	default:
		return "Low"
	}
}

func powerFromString(s string) blocks.Power {
	switch s {
	case "Mid":
		return blocks.PowerMid
	case "High":
		return blocks.PowerHigh
	default:
		return blocks.PowerLow
	}
}

func kindToString(k blocks.ChannelKind) string {
	if k == blocks.ChannelAnalog {
		return "Analog"
	}
	return "DMR"
}

func kindFromString(s string) blocks.ChannelKind {
	if s == "Analog" {
		return blocks.ChannelAnalog
	}
	return blocks.ChannelDMR
}

func dmrModeToString(m blocks.DMRMode) string {
	if m == blocks.DMRTierII {
		return "TierII"
	}
	return "TierI"
}

func dmrModeFromString(s string) blocks.DMRMode {
	if s == "TierII" {
		return blocks.DMRTierII
	}
	return blocks.DMRTierI
}

func workModeToString(w blocks.WorkMode) string {
	if w == blocks.WorkModeVFO {
		return "VFO"
	}
	return "Channel"
}

func workModeFromString(s string) blocks.WorkMode {
	if s == "VFO" {
		return blocks.WorkModeVFO
	}
	return blocks.WorkModeChannel
}

func mainChannelToString(i int) string {
	if i == 1 {
		return "B"
	}
	return "A"
}

func mainChannelFromString(s string) int {
	if s == "B" {
		return 1
	}
	return 0
}
