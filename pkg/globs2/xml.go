package globs2

import (
	"io"
	"strconv"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
	"github.com/beevik/etree"
)

// Element and attribute names of a shared-mime-info package file
const (
	xmlRoot          = "mime-info"
	xmlMimeType      = "mime-type"
	xmlGlob          = "glob"
	xmlGlobDeleteAll = "glob-deleteall"

	xmlAttrType          = "type"
	xmlAttrPattern       = "pattern"
	xmlAttrWeight        = "weight"
	xmlAttrCaseSensitive = "case-sensitive"
)

// parseXML reads the glob elements of a mime/packages/*.xml file. Entry.Line
// is the 1-based position of the record in the file since the XML reader
// does not track lines.
func parseXML(r io.Reader, onError func(error) error) ([]Entry, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseParse, "invalid mime package xml")
	}

	root := doc.Root()
	if root == nil || root.Tag != xmlRoot {
		return nil, errors.Newf(errors.ErrDatabaseParse, "mime package xml has no <%s> root", xmlRoot)
	}

	var entries []Entry
	record := 0
	for _, mt := range root.SelectElements(xmlMimeType) {
		mimeType := mt.SelectAttrValue(xmlAttrType, "")

		for _, child := range mt.ChildElements() {
			var entry Entry
			var err error
			switch child.Tag {
			case xmlGlobDeleteAll:
				entry, err = finishEntry(Entry{Glob: glob.NewGlob(NoGlobs, mimeType)}, child.GetPath())
			case xmlGlob:
				entry, err = parseXMLGlob(child, mimeType)
			default:
				continue
			}

			record++
			if err != nil {
				wrapped := errors.Wrapf(err, errors.ErrDatabaseParse, "%s %q record %d", xmlMimeType, mimeType, record).
					WithDetail("mimeType", mimeType).
					WithDetail("line", record)
				if err := onError(wrapped); err != nil {
					return nil, err
				}
				continue
			}

			entry.Line = record
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func parseXMLGlob(el *etree.Element, mimeType string) (Entry, error) {
	entry := Entry{Glob: glob.NewGlob(el.SelectAttrValue(xmlAttrPattern, ""), mimeType)}

	if w := el.SelectAttrValue(xmlAttrWeight, ""); w != "" {
		weight, err := strconv.Atoi(w)
		if err != nil {
			return Entry{}, errors.Wrapf(err, errors.ErrDatabaseParse, "invalid weight %q", w)
		}
		entry.Weight = weight
	}

	if cs := el.SelectAttrValue(xmlAttrCaseSensitive, ""); cs != "" {
		caseSensitive, err := strconv.ParseBool(cs)
		if err != nil {
			return Entry{}, errors.Wrapf(err, errors.ErrDatabaseParse, "invalid %s %q", xmlAttrCaseSensitive, cs)
		}
		entry.CaseSensitive = caseSensitive
	}

	if entry.Pattern == NoGlobs {
		return Entry{}, errors.Newf(errors.ErrDatabaseParse, "%s is not a glob pattern", NoGlobs)
	}
	return finishEntry(entry, el.GetPath())
}
