package models

import (
	"errors"
	"fmt"
	"strings"
)

// LinkKind is the target kind of a hyperlink.
type LinkKind uint8

// Hyperlink kinds.
const (
	LinkURL LinkKind = iota
	LinkFile
	LinkEmail
	LinkDocument
)

var linkKindNames = [...]string{"url", "file", "email", "document"}

func (k LinkKind) String() string {
	if int(k) < len(linkKindNames) {
		return linkKindNames[k]
	}
	return fmt.Sprintf("LinkKind(%d)", uint8(k))
}

// Hyperlink is the link attached to a cell. Address is a URL for LinkURL, a
// path for LinkFile, a "mailto:" URI for LinkEmail and a reference such as
// "'Target Sheet'!A1" for LinkDocument.
type Hyperlink struct {
	Kind    LinkKind
	Address string
	// Tooltip is optional screen tip text.
	Tooltip string
}

func (l Hyperlink) validate() error {
	if l.Address == "" {
		return errors.New("hyperlink address is empty")
	}
	if l.Kind > LinkDocument {
		return fmt.Errorf("unknown hyperlink kind %d", l.Kind)
	}
	return nil
}

// GuessLinkKind infers the kind of a bare address, as read back from a file
// that does not record it.
func GuessLinkKind(address string) LinkKind {
	lower := strings.ToLower(address)
	switch {
	case strings.HasPrefix(lower, "mailto:"):
		return LinkEmail
	case strings.Contains(lower, "://"):
		return LinkURL
	case strings.Contains(address, "!"):
		return LinkDocument
	}
	return LinkFile
}

// SplitLocation splits a document-internal reference "'Sheet'!A1" into the
// sheet name and the cell reference.
func SplitLocation(address string) (sheet, ref string) {
	i := strings.LastIndex(address, "!")
	if i < 0 {
		return "", address
	}
	sheet = address[:i]
	if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, address[i+1:]
}

// QuoteSheetName quotes a sheet name for use in references when needed.
func QuoteSheetName(name string) string {
	if strings.IndexFunc(name, func(r rune) bool {
		return !(r == '_' || r == '.' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z')
	}) < 0 {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
