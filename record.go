package main

import (
	"fmt"
	"strings"
)

// Record is a single msgid/msgstr pair, one spreadsheet row.
type Record struct {
	MsgID  string
	MsgStr string
}

func newRecord(msgid, msgstr string) Record {
	return Record{MsgID: msgid, MsgStr: msgstr}
}

// String renders the record as a two line PO entry.
func (r Record) String() string {
	return fmt.Sprintf("msgid \"%s\"\nmsgstr \"%s\"", escapePoString(r.MsgID), escapePoString(r.MsgStr))
}

// escapePoString only escapes double quotes. Backslashes and newlines are
// written as-is.
func escapePoString(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

// renderCatalog joins the rendered records with a blank line between entries.
func renderCatalog(records []Record) string {
	blocks := make([]string, len(records))
	for i, r := range records {
		blocks[i] = r.String()
	}
	return strings.Join(blocks, "\n\n")
}
