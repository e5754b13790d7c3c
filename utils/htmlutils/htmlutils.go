// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

// Package htmlutils provides utility functions for working with HTML.
package htmlutils

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Node2string flattens the text content of n into sb, joining the text of
// sibling nodes with a single space.
func Node2string(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		tmp := strings.TrimSpace(n.Data)
		if len(tmp) > 0 {
			if sb.Len() != 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(tmp)
		}

		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		Node2string(child, sb)
	}
}

// AsNode parses an io.Reader as an HTML node. The reader goes through
// charset sniffing first: coordinate tables saved from spreadsheets or old
// GIS tools frequently arrive in ISO-8859-1 rather than UTF-8.
func AsNode(r io.Reader) (*html.Node, error) {
	rr, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	n, err := html.Parse(rr)
	if err != nil {
		return nil, fmt.Errorf("parsing body as HTML: %w", err)
	}

	return n, nil
}

// FindAll walks the tree depth first, collecting every element named tag.
func FindAll(n *html.Node, tag string) []*html.Node {
	var found []*html.Node

	if n.Type == html.ElementNode && strings.EqualFold(tag, n.Data) {
		found = append(found, n)
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		found = append(found, FindAll(child, tag)...)
	}

	return found
}
