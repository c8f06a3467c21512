package sdp

import (
	"bytes"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-ble/ble"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" ?>` + "\n"

// Marshal renders a tag tree as BlueZ-compatible SDP record XML.
func Marshal(t Tag) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := encodeTag(enc, t); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeTag(enc *xml.Encoder, t Tag) error {
	switch v := t.(type) {
	case Record:
		return encodeParent(enc, "record", nil, v.Items)
	case Attribute:
		id := xml.Attr{Name: xml.Name{Local: "id"}, Value: fmt.Sprintf("0x%04x", v.ID)}
		return encodeParent(enc, "attribute", []xml.Attr{id}, []Tag{v.Value})
	case Sequence:
		return encodeParent(enc, "sequence", nil, v.Items)
	case Boolean:
		return encodeLeaf(enc, "boolean", strconv.FormatBool(bool(v)))
	case UInt8:
		return encodeLeaf(enc, "uint8", fmt.Sprintf("0x%02x", uint8(v)))
	case UInt16:
		return encodeLeaf(enc, "uint16", fmt.Sprintf("0x%04x", uint16(v)))
	case Text:
		return encodeLeaf(enc, "text", string(v))
	case RawText:
		el := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "encoding"}, Value: "hex"},
				{Name: xml.Name{Local: "value"}, Value: hex.EncodeToString(v)},
			},
		}
		if err := enc.EncodeToken(el); err != nil {
			return err
		}
		return enc.EncodeToken(el.End())
	case UUID:
		return encodeLeaf(enc, "uuid", formatUUID(v.Value))
	default:
		return fmt.Errorf("cannot marshal tag of kind %s", t.Kind())
	}
}

func encodeParent(enc *xml.Encoder, name string, attrs []xml.Attr, items []Tag) error {
	el := xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	for _, item := range items {
		if err := encodeTag(enc, item); err != nil {
			return err
		}
	}
	return enc.EncodeToken(el.End())
}

func encodeLeaf(enc *xml.Encoder, name, value string) error {
	el := xml.StartElement{
		Name: xml.Name{Local: name},
		Attr: []xml.Attr{{Name: xml.Name{Local: "value"}, Value: value}},
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}

// formatUUID renders short SIG aliases as 0x-prefixed 16-bit values and full
// UUIDs in the dashed form BlueZ emits.
func formatUUID(u ble.UUID) string {
	s := u.String()
	if u.Len() == 2 {
		return "0x" + s
	}
	if len(s) == 32 {
		return s[:8] + "-" + s[8:12] + "-" + s[12:16] + "-" + s[16:20] + "-" + s[20:]
	}
	return s
}

// Unmarshal parses BlueZ-compatible SDP record XML into a tag tree.
func Unmarshal(data []byte) (Tag, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("xml parse error: no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("xml parse error: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			tag, err := decodeElement(dec, start)
			if err != nil {
				return nil, err
			}
			return tag, nil
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (Tag, error) {
	switch start.Name.Local {
	case "record":
		items, err := decodeChildren(dec, start)
		if err != nil {
			return nil, err
		}
		return Record{Items: items}, nil
	case "attribute":
		idStr, ok := xmlAttr(start, "id")
		if !ok {
			return nil, fmt.Errorf("xml parse error: attribute element without id")
		}
		id, err := strconv.ParseUint(idStr, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("xml parse error: bad attribute id %q: %w", idStr, err)
		}
		items, err := decodeChildren(dec, start)
		if err != nil {
			return nil, err
		}
		if len(items) != 1 {
			return nil, fmt.Errorf("xml parse error: attribute 0x%04x holds %d values, want 1", id, len(items))
		}
		return Attribute{ID: uint16(id), Value: items[0]}, nil
	case "sequence":
		items, err := decodeChildren(dec, start)
		if err != nil {
			return nil, err
		}
		return Sequence{Items: items}, nil
	case "boolean":
		value, err := requireValue(dec, start)
		if err != nil {
			return nil, err
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("xml parse error: bad boolean %q: %w", value, err)
		}
		return Boolean(b), nil
	case "uint8":
		value, err := requireValue(dec, start)
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("xml parse error: bad uint8 %q: %w", value, err)
		}
		return UInt8(n), nil
	case "uint16":
		value, err := requireValue(dec, start)
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("xml parse error: bad uint16 %q: %w", value, err)
		}
		return UInt16(n), nil
	case "text":
		value, err := requireValue(dec, start)
		if err != nil {
			return nil, err
		}
		if enc, ok := xmlAttr(start, "encoding"); ok && enc == "hex" {
			raw, err := hex.DecodeString(value)
			if err != nil {
				return nil, fmt.Errorf("xml parse error: bad hex text: %w", err)
			}
			return RawText(raw), nil
		}
		return Text(value), nil
	case "uuid":
		value, err := requireValue(dec, start)
		if err != nil {
			return nil, err
		}
		u, err := ble.Parse(strings.TrimPrefix(value, "0x"))
		if err != nil {
			return nil, fmt.Errorf("xml parse error: bad uuid %q: %w", value, err)
		}
		return UUID{Value: u}, nil
	default:
		return nil, fmt.Errorf("xml parse error: unknown element <%s>", start.Name.Local)
	}
}

// decodeChildren consumes tokens up to the matching end element, recursing
// into each child element.
func decodeChildren(dec *xml.Decoder, start xml.StartElement) ([]Tag, error) {
	var items []Tag
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("xml parse error: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		case xml.EndElement:
			return items, nil
		}
	}
}

// requireValue reads the element's value attribute and skips to its end tag.
func requireValue(dec *xml.Decoder, start xml.StartElement) (string, error) {
	value, ok := xmlAttr(start, "value")
	if !ok {
		return "", fmt.Errorf("xml parse error: <%s> element without value", start.Name.Local)
	}
	if err := dec.Skip(); err != nil {
		return "", fmt.Errorf("xml parse error: %w", err)
	}
	return value, nil
}

func xmlAttr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
