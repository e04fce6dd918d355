package fieldcodec

// dcsCodes is the fixed 105-entry table of standard DCS codes, in the
// exact order the radio's byte index expects. A wire byte0 in [1, 210]
// selects index byte0-1 into this table doubled with the N/I suffix:
// indices 0..104 are Normal, 105..209 are the same codes Inverted.
var dcsCodes = [105]string{
	"023", "025", "026", "031", "032", "036", "042", "043", "047", "051",
	"053", "054", "065", "071", "072", "073", "074", "114", "115", "116",
	"122", "125", "131", "132", "134", "143", "145", "152", "155", "156",
	"162", "165", "172", "174", "205", "212", "223", "225", "226", "243",
	"244", "245", "246", "251", "252", "255", "261", "263", "265", "266",
	"271", "274", "306", "311", "315", "325", "331", "332", "343", "346",
	"351", "356", "364", "365", "371", "411", "412", "413", "423", "431",
	"432", "445", "446", "452", "454", "455", "462", "464", "465", "466",
	"503", "506", "516", "523", "526", "532", "546", "565", "606", "612",
	"624", "627", "631", "632", "654", "662", "664", "703", "712", "723",
	"731", "732", "734", "743", "754",
}

// dcsIndex maps a bare 3-digit code string (e.g. "023") to its table index
// (0..104).
var dcsIndex = func() map[string]int {
	m := make(map[string]int, len(dcsCodes))
	for i, c := range dcsCodes {
		m[c] = i
	}
	return m
}()
