package yamlser

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/olekukonko/tablewriter"

	"github.com/tipee-sa/yamlser/tree"
)

// HumanRenderer renders a tree for people rather than parsers. Scalars print
// one per line and null prints nothing. A hash becomes a two column
// "key : value" table without its null values, an array of hashes becomes a
// table with one column per key, and other arrays print their elements one
// after the other.
type HumanRenderer struct{}

func (HumanRenderer) Render(w io.Writer, root *tree.Node) error {
	return renderHuman(w, root)
}

func renderHuman(w io.Writer, n *tree.Node) error {
	switch n.Type {
	case tree.NullType:
		return nil

	case tree.ArrayType:
		if isHashList(n.Values) {
			return renderHashList(w, n.Values)
		}
		for _, v := range n.Values {
			if err := renderHuman(w, v); err != nil {
				return err
			}
		}
		return nil

	case tree.HashType:
		return renderHash(w, n)
	}

	_, err := fmt.Fprintln(w, scalarText(n))
	return err
}

func isHashList(values []*tree.Node) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v.Type != tree.HashType {
			return false
		}
	}
	return true
}

func renderHashList(w io.Writer, hashes []*tree.Node) error {
	table := tablewriter.NewWriter(w)
	table.SetNoWhiteSpace(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)

	// Columns are the keys of all rows, in order of first appearance. Keys
	// with the same label but a different value, such as 1 and "1", get
	// separate columns.
	var columns []columnKey
	seen := make(map[columnKey]bool)
	for _, h := range hashes {
		for _, k := range h.Fields {
			c := columnKeyOf(k)
			if !seen[c] {
				seen[c] = true
				columns = append(columns, c)
			}
		}
	}
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.label + "  "
	}
	table.SetHeader(headers)

	for _, h := range hashes {
		row := make([]string, len(columns))
		cells := make(map[columnKey]*tree.Node, len(h.Fields))
		for i, k := range h.Fields {
			c := columnKeyOf(k)
			if _, ok := cells[c]; !ok {
				cells[c] = h.Values[i]
			}
		}
		for col, c := range columns {
			var value string
			if v, ok := cells[c]; ok {
				var err error
				value, err = renderHumanValue(v)
				if err != nil {
					return err
				}
			}
			row[col] = value + "   "
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// columnKey identifies a hash key by its type and flow form.
type columnKey struct {
	typ   tree.Type
	flow  string
	label string
}

func columnKeyOf(k *tree.Node) columnKey {
	return columnKey{typ: k.Type, flow: k.String(), label: keyText(k)}
}

func renderHash(w io.Writer, n *tree.Node) error {
	table := tablewriter.NewWriter(w)
	table.SetNoWhiteSpace(true)
	table.SetBorder(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	table.SetAutoWrapText(false)

	hasField := false
	for i, k := range n.Fields {
		v := n.Values[i]
		if v.Type == tree.NullType {
			continue
		}
		value, err := renderHumanValue(v)
		if err != nil {
			return err
		}
		hasField = true
		table.Append([]string{keyText(k) + " : ", value})
	}

	// A hash holding only nulls prints nothing, like null itself.
	if hasField {
		table.Render()
	}
	return nil
}

func renderHumanValue(n *tree.Node) (string, error) {
	var buf bytes.Buffer
	if err := renderHuman(&buf, n); err != nil {
		return "", err
	}
	str := strings.TrimRightFunc(buf.String(), unicode.IsSpace)
	if strings.Contains(str, "\n") {
		str = str + "\n"
	}
	return str, nil
}

func scalarText(n *tree.Node) string {
	switch n.Type {
	case tree.BoolType:
		return strconv.FormatBool(n.Bool)
	case tree.IntType:
		return strconv.FormatInt(n.Int, 10)
	case tree.RealType, tree.StringType:
		return n.Text
	case tree.NullType:
		return ""
	}
	return n.String()
}

func keyText(k *tree.Node) string {
	if k.Type.IsLeaf() {
		return scalarText(k)
	}
	return k.String()
}
