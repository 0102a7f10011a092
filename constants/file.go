package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for document ingestion.
// Input is text already extracted from the source reports; .pdf is accepted only
// when a .txt sidecar with the extracted text sits next to it.
var AllowedExtensions = map[string]struct{}{
	"txt": {},
	"pdf": {},
}

// ProvenanceLineRules is the extraction_method tag recorded for values produced
// by the positional line-grammar extractors.
const ProvenanceLineRules = "line_rules"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
