package types

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// DecodeNation parses a <NATION> document.
func DecodeNation(body []byte) (*Nation, error) {
	var n Nation
	if err := decode(body, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func decode(body []byte, v any) error {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.CharsetReader = charsetReader
	return d.Decode(v)
}

// The API declares its documents either as UTF-8 or, for older shards,
// as one of the Latin-1 family.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "utf-8", "utf8", "":
		return input, nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	}
	return nil, fmt.Errorf("unsupported charset %q", charset)
}
