// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package htmlutils

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestNode2string(t *testing.T) {
	tests := []struct {
		expected string
		input    string
	}{
		{"foo bar", "<div><pre>foo</pre><span>bar</span>"},
		{"35°45'30\"N", `<td>35°45'30"N</td>`},
		{"", "<div><span>  </span></div>"},
	}

	for _, test := range tests {
		n, err := html.Parse(strings.NewReader(test.input))
		if err != nil {
			t.Fatalf("parsing HTML `%s': %s", test.input, err)
		}

		sb := strings.Builder{}
		Node2string(n, &sb)

		if got := sb.String(); got != test.expected {
			t.Errorf("`%s': expected `%v' but got `%v'", test.input, test.expected, got)
		}
	}
}

func TestAsNode(t *testing.T) {
	n, err := AsNode(strings.NewReader("<html><body><p>hola</p></body></html>"))
	if err != nil {
		t.Fatalf("AsNode() error = %v", err)
	}

	sb := strings.Builder{}
	Node2string(n, &sb)

	if sb.String() != "hola" {
		t.Errorf("expected `hola', got `%s'", sb.String())
	}
}

func TestFindAll(t *testing.T) {
	input := `<table><tr><td>a</td><td>b</td></tr><tr><td>c</td></tr></table>`

	n, err := AsNode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if got := len(FindAll(n, "tr")); got != 2 {
		t.Errorf("expected 2 tr elements, got %d", got)
	}

	if got := len(FindAll(n, "td")); got != 3 {
		t.Errorf("expected 3 td elements, got %d", got)
	}

	if got := len(FindAll(n, "table")); got != 1 {
		t.Errorf("expected 1 table element, got %d", got)
	}
}
