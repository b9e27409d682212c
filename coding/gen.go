//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// tables from qrencode-3.1.1/qrspec.c

var capacity = [41]struct {
	width     int
	words     int
	remainder int
	ec        [4]int
}{
	{0, 0, 0, [4]int{0, 0, 0, 0}},
	{21, 26, 0, [4]int{7, 10, 13, 17}}, // 1
	{25, 44, 7, [4]int{10, 16, 22, 28}},
	{29, 70, 7, [4]int{15, 26, 36, 44}},
	{33, 100, 7, [4]int{20, 36, 52, 64}},
	{37, 134, 7, [4]int{26, 48, 72, 88}}, // 5
	{41, 172, 7, [4]int{36, 64, 96, 112}},
	{45, 196, 0, [4]int{40, 72, 108, 130}},
	{49, 242, 0, [4]int{48, 88, 132, 156}},
	{53, 292, 0, [4]int{60, 110, 160, 192}},
	{57, 346, 0, [4]int{72, 130, 192, 224}}, //10
	{61, 404, 0, [4]int{80, 150, 224, 264}},
	{65, 466, 0, [4]int{96, 176, 260, 308}},
	{69, 532, 0, [4]int{104, 198, 288, 352}},
	{73, 581, 3, [4]int{120, 216, 320, 384}},
	{77, 655, 3, [4]int{132, 240, 360, 432}}, //15
	{81, 733, 3, [4]int{144, 280, 408, 480}},
	{85, 815, 3, [4]int{168, 308, 448, 532}},
	{89, 901, 3, [4]int{180, 338, 504, 588}},
	{93, 991, 3, [4]int{196, 364, 546, 650}},
	{97, 1085, 3, [4]int{224, 416, 600, 700}}, //20
	{101, 1156, 4, [4]int{224, 442, 644, 750}},
	{105, 1258, 4, [4]int{252, 476, 690, 816}},
	{109, 1364, 4, [4]int{270, 504, 750, 900}},
	{113, 1474, 4, [4]int{300, 560, 810, 960}},
	{117, 1588, 4, [4]int{312, 588, 870, 1050}}, //25
	{121, 1706, 4, [4]int{336, 644, 952, 1110}},
	{125, 1828, 4, [4]int{360, 700, 1020, 1200}},
	{129, 1921, 3, [4]int{390, 728, 1050, 1260}},
	{133, 2051, 3, [4]int{420, 784, 1140, 1350}},
	{137, 2185, 3, [4]int{450, 812, 1200, 1440}}, //30
	{141, 2323, 3, [4]int{480, 868, 1290, 1530}},
	{145, 2465, 3, [4]int{510, 924, 1350, 1620}},
	{149, 2611, 3, [4]int{540, 980, 1440, 1710}},
	{153, 2761, 3, [4]int{570, 1036, 1530, 1800}},
	{157, 2876, 0, [4]int{570, 1064, 1590, 1890}}, //35
	{161, 3034, 0, [4]int{600, 1120, 1680, 1980}},
	{165, 3196, 0, [4]int{630, 1204, 1770, 2100}},
	{169, 3362, 0, [4]int{660, 1260, 1860, 2220}},
	{173, 3532, 0, [4]int{720, 1316, 1950, 2310}},
	{177, 3706, 0, [4]int{750, 1372, 2040, 2430}}, //40
}

// Number of blocks for levels L, M, Q and H.
var nblocks = [41][4]int{
	{0, 0, 0, 0},
	{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 2, 2}, {1, 2, 2, 4}, {1, 2, 4, 4}, // 1- 5
	{2, 4, 4, 4}, {2, 4, 6, 5}, {2, 4, 6, 6}, {2, 5, 8, 8}, {4, 5, 8, 8}, // 6-10
	{4, 5, 8, 11}, {4, 8, 10, 11}, {4, 9, 12, 16}, {4, 9, 16, 16}, {6, 10, 12, 18}, //11-15
	{6, 10, 17, 16}, {6, 11, 16, 19}, {6, 13, 18, 21}, {7, 14, 21, 25}, {8, 16, 20, 25}, //16-20
	{8, 17, 23, 25}, {9, 17, 23, 34}, {9, 18, 25, 30}, {10, 20, 27, 32}, {12, 21, 29, 35}, //21-25
	{12, 23, 34, 37}, {12, 25, 34, 40}, {13, 26, 35, 42}, {14, 28, 38, 45}, {15, 29, 40, 48}, //26-30
	{16, 31, 43, 51}, {17, 33, 45, 54}, {18, 35, 48, 57}, {19, 37, 51, 60}, {19, 38, 53, 63}, //31-35
	{20, 40, 56, 66}, {21, 43, 59, 70}, {22, 45, 62, 74}, {24, 47, 65, 77}, {25, 49, 68, 81}, //36-40
}

// Alignment pattern coordinates: first after 6, and second (0 if none).
var align = [41][2]int{
	{0, 0},
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1- 5
	{34, 0}, {22, 38}, {24, 42}, {26, 46}, {28, 50}, // 6-10
	{30, 54}, {32, 58}, {34, 62}, {26, 46}, {26, 48}, //11-15
	{26, 50}, {30, 54}, {30, 56}, {30, 58}, {34, 62}, //16-20
	{28, 50}, {26, 50}, {30, 54}, {28, 54}, {32, 58}, //21-25
	{30, 58}, {34, 62}, {26, 50}, {30, 54}, {26, 52}, //26-30
	{30, 56}, {34, 60}, {30, 58}, {34, 62}, {30, 54}, //31-35
	{24, 50}, {28, 54}, {32, 58}, {26, 54}, {30, 58}, //35-40
}

var versionPattern = [41]int{
	0,
	0, 0, 0, 0, 0, 0,
	0x07c94, 0x085bc, 0x09a99, 0x0a4d3, 0x0bbf6, 0x0c762,
	0x0d847, 0x0e60d, 0x0f928, 0x10b78, 0x1145d, 0x12a17,
	0x13532, 0x149a6, 0x15683, 0x168c9, 0x177ec, 0x18ec4,
	0x191e1, 0x1afab, 0x1b08e, 0x1cc1a, 0x1d33f, 0x1ed75,
	0x1f250, 0x209d5, 0x216f0, 0x228ba, 0x2379f, 0x24b0b,
	0x2542e, 0x26a64, 0x27541, 0x28c69,
}

func calcFormat(fb uint16) uint16 {
	const formatPoly = 0x537
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return fb | rem
}

// spacing returns the distance between alignment patterns.  Versions
// up to 6 have a single pattern; any spacing over width-16 keeps the
// walk from drawing a second one.
func spacing(v int) int {
	if align[v][1] == 0 {
		return 4*v + 7
	}
	return align[v][1] - align[v][0]
}

func row(w *bufio.Writer, format string, v []int, n int) {
	for i := 0; i < len(v); i += n {
		s := make([]string, 0, n)
		for _, x := range v[i:min(i+n, len(v))] {
			s = append(s, fmt.Sprintf(format, x))
		}
		fmt.Fprintf(w, "\t%s,\n", strings.Join(s, ", "))
	}
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Block table: short blocks, long blocks, data bytes per short block,
// check bytes per block.  Indexed by version and level.
var btab = [MaxVersion + 1][4]blocks{
`)
	for v := 1; v <= 40; v++ {
		fmt.Fprintf(w, "\t%d: {", v)
		for l := 0; l < 4; l++ {
			nb := nblocks[v][l]
			data := capacity[v].words - capacity[v].ec[l]
			long := data % nb
			if capacity[v].ec[l]%nb != 0 {
				panic(fmt.Sprintf("version %d level %d: uneven check bytes", v, l))
			}
			sep := ", "
			if l == 3 {
				sep = ""
			}
			fmt.Fprintf(w, "{%d, %d, %d, %d}%s", nb-long, long, data/nb,
				capacity[v].ec[l]/nb, sep)
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// Alignment pattern spacing.\nvar atab = [MaxVersion + 1]int{\n")
	sp := make([]int, 41)
	for v := 1; v <= 40; v++ {
		sp[v] = spacing(v)
	}
	row(w, "%d", sp[:11], 11)
	row(w, "%d", sp[11:], 10)
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// Version information bits.\nvar vtab = [MaxVersion + 1]uint32{\n")
	fmt.Fprintln(w, "\t0, 0, 0, 0, 0, 0, 0,")
	row(w, "0x%05x", versionPattern[7:], 6)
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// QR Code format bits, indexed by level and mask.\n"+
		"var ftab = [4][8]uint16{\n")
	for l := 0; l < 4; l++ {
		fmt.Fprint(w, "\t{")
		for m := 0; m < 8; m++ {
			fb := uint16(l^1) << 13 // L=01, M=00, Q=11, H=10
			fb |= uint16(m) << 10   // mask
			fb = calcFormat(fb) ^ 0x5412
			if m != 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "0x%04x", fb)
		}
		fmt.Fprintf(w, "}, // %c\n", "LMQH"[l])
	}
	fmt.Fprintln(w, "}")

	var exp, log [256]int
	for i, x := 0, 1; i < 255; i++ {
		exp[i] = x
		log[x] = i
		if x <<= 1; x&0x100 != 0 {
			x ^= 0x11d
		}
	}
	log[0] = 255
	fmt.Fprint(w, "\n// GF(256) exponent table.\nvar expTab = [256]byte{\n")
	row(w, "0x%02x", exp[:], 8)
	fmt.Fprintln(w, "}")
	fmt.Fprint(w, "\n// GF(256) logarithm table.  logTab[0] is logZero.\n"+
		"var logTab = [256]byte{\n")
	row(w, "0x%02x", log[:], 8)
	fmt.Fprintln(w, "}")
	w.Flush()
}
