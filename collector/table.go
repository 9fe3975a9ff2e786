package collector

import (
	"strings"

	"golang.org/x/net/html"
)

const tableEnd = "</table>"

// tableCell is a <td> holding plain text only.
type tableCell struct {
	text  string
	class string
	// classed is set when the cell carries a class attribute.
	classed bool
}

// sectionTable returns the table starting with tableTag, searching from the
// first occurrence of marker. An empty marker searches the whole page.
func sectionTable(page, marker, tableTag string) (string, bool) {
	start := 0
	if marker != "" {
		start = strings.Index(page, marker)
		if start < 0 {
			return "", false
		}
	}

	i := strings.Index(page[start:], tableTag)
	if i < 0 {
		return "", false
	}
	start += i

	end := strings.Index(page[start:], tableEnd)
	if end < 0 {
		return "", false
	}

	return page[start : start+end+len(tableEnd)], true
}

// tableRows tokenizes a table fragment and returns the rows made only of
// text cells. Rows containing header cells, nested markup, stray text or
// empty cells are skipped.
func tableRows(fragment string) [][]tableCell {
	var (
		rows   [][]tableCell
		row    []tableCell
		cell   *tableCell
		inRow  bool
		broken bool
	)

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return rows

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch {
			case string(name) == "tr":
				row, cell, inRow, broken = nil, nil, true, false
			case !inRow:
			case cell != nil:
				broken = true
			case string(name) == "td" && tt == html.StartTagToken:
				cell = &tableCell{}
				for hasAttr {
					var key, val []byte
					key, val, hasAttr = z.TagAttr()
					if string(key) == "class" {
						cell.class = string(val)
						cell.classed = true
					}
				}
			default:
				broken = true
			}

		case html.TextToken:
			if !inRow {
				continue
			}
			text := string(z.Text())
			if cell != nil {
				cell.text += text
			} else if strings.TrimSpace(text) != "" {
				broken = true
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch {
			case !inRow:
			case string(name) == "td" && cell != nil:
				cell.text = strings.TrimSpace(cell.text)
				if cell.text == "" {
					broken = true
				}
				row = append(row, *cell)
				cell = nil
			case string(name) == "tr":
				if !broken && cell == nil {
					rows = append(rows, row)
				}
				row, cell, inRow = nil, nil, false
			case cell != nil:
				broken = true
			}
		}
	}
}
