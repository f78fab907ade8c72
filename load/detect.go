package load

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ============================================================================
// FORMAT DETECTION
// ============================================================================

// Format identifies a supported source file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatStata
	FormatSAS
	FormatCSV
	FormatParquet
)

func (f Format) String() string {
	switch f {
	case FormatStata:
		return "stata"
	case FormatSAS:
		return "sas"
	case FormatCSV:
		return "csv"
	case FormatParquet:
		return "parquet"
	default:
		return "unknown"
	}
}

// DetectFormat determines the source format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dta":
		return FormatStata
	case ".sas7bdat":
		return FormatSAS
	case ".csv", ".tsv":
		return FormatCSV
	case ".parquet":
		return FormatParquet
	default:
		return FormatUnknown
	}
}

// detectCSVSeparator sniffs the field separator from the first line.
func detectCSVSeparator(path string) (rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return ',', err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		// empty file or read error, use default comma
		return ',', scanner.Err()
	}

	firstLine := scanner.Text()
	if firstLine == "" {
		return ',', nil
	}

	// Count occurrences of common separators
	separators := map[rune]int{
		',':  strings.Count(firstLine, ","),
		';':  strings.Count(firstLine, ";"),
		'\t': strings.Count(firstLine, "\t"),
		'|':  strings.Count(firstLine, "|"),
	}

	maxCount := 0
	detected := ','
	for sep, count := range separators {
		if count > maxCount {
			maxCount = count
			detected = sep
		}
	}

	if maxCount == 0 {
		return ',', nil
	}
	return detected, nil
}
