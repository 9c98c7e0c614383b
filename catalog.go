package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chai2010/gettext-go/po"
)

// catalog is the part of a PO file that survives conversion: the ordered
// msgid/msgstr pairs and the target language from the header.
type catalog struct {
	Language string
	Records  []Record
}

// readCatalog reads and parses the PO file at path. The header entry is not
// returned as a record.
func readCatalog(path string) (*catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*catalog, error) {
	file, err := po.Load(splitEntries(data))
	if err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &catalog{
		Language: file.MimeHeader.Language,
		Records:  make([]Record, 0, len(file.Messages)),
	}
	for _, msg := range file.Messages {
		c.Records = append(c.Records, newRecord(msg.MsgId, firstTranslation(msg)))
	}
	return c, nil
}

// firstTranslation returns the first translation alternative of msg, which
// is the first plural form for entries that have msgid_plural.
func firstTranslation(msg po.Message) string {
	if msg.MsgStr != "" {
		return msg.MsgStr
	}
	if len(msg.MsgStrPlural) > 0 {
		return msg.MsgStrPlural[0]
	}
	return ""
}

// splitEntries prepares catalog text for po.Load, which only ends an entry
// at a blank or comment line. A blank line is inserted wherever a msgctxt or
// msgid follows a msgstr directly, and obsolete "#~" entries are turned back
// into ordinary entries so they are read in file order.
func splitEntries(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	out := make([]string, 0, len(lines))
	inMsgstr := false
	for _, line := range lines {
		line = reviveObsolete(line)
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "msgctxt ") || strings.HasPrefix(trimmed, "msgid "):
			if inMsgstr {
				out = append(out, "")
			}
			inMsgstr = false
		case strings.HasPrefix(trimmed, "msgstr"):
			inMsgstr = true
		case strings.HasPrefix(trimmed, "\""):
			// continuation of the current keyword
		default:
			inMsgstr = false
		}
		out = append(out, line)
	}
	return []byte(strings.Join(out, "\n"))
}

// reviveObsolete strips the "#~" marker from an obsolete entry line. "#~|"
// lines hold the previous msgid and stay comments.
func reviveObsolete(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "#~") || strings.HasPrefix(trimmed, "#~|") {
		return line
	}
	return strings.TrimPrefix(strings.TrimPrefix(trimmed, "#~"), " ")
}
