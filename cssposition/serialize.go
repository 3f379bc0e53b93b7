package cssposition

import (
	"bytes"
	"io"

	"oss.terrastruct.com/util-go/xdefer"
)

// Writer is the sink Serialize appends to. *strings.Builder, *bytes.Buffer and *bufio.Writer
// all satisfy it.
type Writer interface {
	io.StringWriter
	io.ByteWriter
}

// Serialize appends the canonical text of v to w and stops at the first failed write. On error
// whatever was already appended to w is not a valid position.
//
// Edge keywords are written for both axes or for neither: "left 10px top 20px" is "10px 20px",
// "right 20px top 0%" keeps both keywords. A preset already sitting on its edge is not repeated,
// so "right 20px top top" is written "right 20px top" while a centered axis keeps its edge
// ("right 20px top center").
func (v Value) Serialize(w Writer) (err error) {
	defer xdefer.Errorf(&err, "failed to serialize position")

	hasRelativeEdges := v.xRelativeTo == EdgeRight || v.yRelativeTo == EdgeBottom
	if hasRelativeEdges {
		err = writeEdgeKeyword(w, v.horizontal, v.xRelativeTo.keyword())
		if err != nil {
			return err
		}
	}
	err = v.horizontal.writeTo(w)
	if err != nil {
		return err
	}
	err = w.WriteByte(' ')
	if err != nil {
		return err
	}
	if hasRelativeEdges {
		err = writeEdgeKeyword(w, v.vertical, v.yRelativeTo.keyword())
		if err != nil {
			return err
		}
	}
	return v.vertical.writeTo(w)
}

// writeEdgeKeyword writes edge followed by a space unless a is the preset of that same edge.
func writeEdgeKeyword[P Preset](w Writer, a Axis[P], edge string) error {
	if p, ok := a.Preset(); ok && p.keyword() == edge {
		return nil
	}
	_, err := w.WriteString(edge)
	if err != nil {
		return err
	}
	return w.WriteByte(' ')
}

func (v Value) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	err := v.Serialize(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String is the canonical text of v, or "" if v cannot be serialized.
func (v Value) String() string {
	b, err := v.MarshalText()
	if err != nil {
		return ""
	}
	return string(b)
}
