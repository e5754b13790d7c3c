// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nprieto/coordconv/dms"
	"github.com/nprieto/coordconv/utils/htmlutils"
)

// ReadHTML extracts the first <table> of an HTML document, using the first
// row as the header. Cell text is flattened, so formatting markup inside
// cells is harmless.
func ReadHTML(r io.Reader) (*Table, error) {
	n, err := htmlutils.AsNode(r)
	if err != nil {
		return nil, err
	}

	tables := htmlutils.FindAll(n, "table")
	if len(tables) == 0 {
		return nil, errors.New("document has no table")
	}

	trs := htmlutils.FindAll(tables[0], "tr")
	if len(trs) == 0 {
		return nil, errors.New("table has no rows")
	}

	headers := cellTexts(trs[0])
	if len(headers) == 0 {
		return nil, errors.New("table has no header cells")
	}

	t := &Table{
		Headers: headers,
		Rows:    make([]dms.Row, 0, len(trs)-1),
	}

	for _, tr := range trs[1:] {
		cells := cellTexts(tr)
		if len(cells) == 0 {
			continue
		}

		t.Rows = append(t.Rows, rowFromRecord(headers, cells))
	}

	return t, nil
}

// Collects the flattened text of the direct td/th children of a row, in
// document order.
func cellTexts(tr *html.Node) []string {
	var cells []string

	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		if !strings.EqualFold("td", child.Data) && !strings.EqualFold("th", child.Data) {
			continue
		}

		sb := strings.Builder{}
		htmlutils.Node2string(child, &sb)
		cells = append(cells, sb.String())
	}

	return cells
}
