package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Helper functions for walking the OOXML package.

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part for a package part, e.g.
// xl/drawings/drawing1.xml -> xl/drawings/_rels/drawing1.xml.rels.
func relsPathFor(part string) string {
	dir, file := "", part
	if idx := strings.LastIndex(part, "/"); idx >= 0 {
		dir, file = part[:idx+1], part[idx+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rID, target := attrValue(se, "Id"), attrValue(se, "Target")
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

// parseRels returns rId -> target for relationships whose type contains kind.
func parseRels(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			relType := strings.ToLower(attrValue(se, "Type"))
			if strings.HasSuffix(relType, "/"+kind) {
				result[attrValue(se, "Id")] = attrValue(se, "Target")
			}
		}
	}

	return result
}

func findDrawingRelationship(data []byte) string {
	for _, target := range parseRels(data, "drawing") {
		return target
	}
	return ""
}

// parseXfrm parses an xfrm element for position and size in pixels.
func parseXfrm(decoder *xml.Decoder) (left, top, width, height int) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "off":
				left = emuAttr(t, "x")
				top = emuAttr(t, "y")
			case "ext":
				width = emuAttr(t, "cx")
				height = emuAttr(t, "cy")
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

func emuAttr(se xml.StartElement, name string) int {
	v, err := strconv.ParseInt(attrValue(se, name), 10, 64)
	if err != nil {
		return 0
	}
	return EMUToPixels(v)
}
