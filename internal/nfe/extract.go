package nfe

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrMalformedDocument is returned when one of the required NFe substructures
// (infNFe, ide, emit, total) is absent from the uploaded payload.
var ErrMalformedDocument = errors.New("invalid document structure")

// RawFields holds the untyped text content pulled out of a parsed NFe tree.
// Every field except the structural ones degrades to "" when its node is absent.
type RawFields struct {
	AccessKey      string
	Number         string
	Series         string
	IssueDate      string
	IssuerTaxID    string
	IssuerName     string
	RecipientTaxID string
	RecipientName  string
	Total          string
	ICMS           string
	PIS            string
	COFINS         string
}

// node is a generic XML tree so lookups work by tag name regardless of the
// wrapper element (bare <NFe> vs <nfeProc>).
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []node     `xml:",any"`
}

// find returns the first descendant (or the node itself) with the given local
// tag name, depth-first.
func (n *node) find(tag string) *node {
	if n.XMLName.Local == tag {
		return n
	}
	for i := range n.Nodes {
		if m := n.Nodes[i].find(tag); m != nil {
			return m
		}
	}
	return nil
}

// childText returns the text content of the first direct child named tag,
// or "" when no such child exists.
func (n *node) childText(tag string) string {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == tag {
			return n.Nodes[i].Text
		}
	}
	return ""
}

func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Extract parses an NFe payload and pulls the fields of interest out of it.
//
// The four structural blocks (infNFe, ide, emit, total) are required and their
// absence fails the document. Everything else is optional: a missing node
// yields an empty field, and the dest block may be absent in its entirety.
func Extract(payload []byte) (*RawFields, error) {
	var root node
	if err := xml.Unmarshal(payload, &root); err != nil {
		// An unparsable payload has no document root at all.
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	inf := root.find("infNFe")
	if inf == nil {
		return nil, ErrMalformedDocument
	}
	ide := inf.find("ide")
	emit := inf.find("emit")
	total := inf.find("total")
	if ide == nil || emit == nil || total == nil {
		return nil, ErrMalformedDocument
	}

	raw := &RawFields{
		AccessKey:   inf.attr("Id"),
		Number:      ide.childText("nNF"),
		Series:      ide.childText("serie"),
		IssueDate:   ide.childText("dhEmi"),
		IssuerTaxID: emit.childText("CNPJ"),
		IssuerName:  emit.childText("xNome"),
	}
	if raw.IssuerTaxID == "" {
		raw.IssuerTaxID = emit.childText("CPF")
	}

	if dest := inf.find("dest"); dest != nil {
		raw.RecipientTaxID = dest.childText("CNPJ")
		if raw.RecipientTaxID == "" {
			raw.RecipientTaxID = dest.childText("CPF")
		}
		raw.RecipientName = dest.childText("xNome")
	}

	if tot := total.find("ICMSTot"); tot != nil {
		raw.Total = tot.childText("vNF")
		raw.ICMS = tot.childText("vICMS")
		raw.PIS = tot.childText("vPIS")
		raw.COFINS = tot.childText("vCOFINS")
	}

	return raw, nil
}
