package main

import "strings"

var excelSuffixes = []string{".xls", ".xlsx", ".xlsm", ".xlsb"}

func normalizePath(path string) string {
	return strings.ToLower(strings.TrimSpace(path))
}

// isPoFile reports whether path names a PO catalog. Only the suffix is
// inspected; the file does not have to exist.
func isPoFile(path string) bool {
	return strings.HasSuffix(normalizePath(path), ".po")
}

// isExcelFile reports whether path names a spreadsheet workbook.
func isExcelFile(path string) bool {
	p := normalizePath(path)
	for _, suffix := range excelSuffixes {
		if strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}
