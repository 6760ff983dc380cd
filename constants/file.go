package constants

import "strings"

// FileFormat is the coarse input class that decides which processing path runs.
type FileFormat string

const (
	TABULAR FileFormat = "TABULAR" // csv / xlsx / xls -> normalization path
	PDF     FileFormat = "PDF"     // pdf -> text-layer / OCR path
	IMAGE   FileFormat = "IMAGE"   // png / jpg / jpeg -> OCR path
)

// TabularExtensions holds the supported spreadsheet extensions.
var TabularExtensions = map[string]struct{}{
	"csv":  {},
	"xlsx": {},
	"xls":  {},
}

// DocumentExtensions holds the supported document extensions.
var DocumentExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the processing format for a normalized extension,
// or "" when the extension is not supported.
func MapExtToFormat(ext string) FileFormat {
	ext = NormalizeExt(ext)
	if _, ok := TabularExtensions[ext]; ok {
		return TABULAR
	}
	switch ext {
	case "pdf":
		return PDF
	case "png", "jpg", "jpeg":
		return IMAGE
	}
	return ""
}
