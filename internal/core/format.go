package core

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// sizeUnits are the binary magnitude suffixes used by FormatSize.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with binary units (1024 divisor), keeping at
// most two decimals and trimming trailing zeros: 1536 -> "1.5 KB".
// Values beyond the TB range stay in TB.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		return "-" + FormatSize(-bytes)
	}

	size := float64(bytes)
	order := 0
	for size >= 1024 && order < len(sizeUnits)-1 {
		order++
		size /= 1024
	}

	num := strconv.FormatFloat(size, 'f', 2, 64)
	num = strings.TrimRight(num, "0")
	num = strings.TrimSuffix(num, ".")

	return num + " " + sizeUnits[order]
}

// FormatCount renders an item count with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
