package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentKind distinguishes the four billing document types, which share
// one shape and one collection.
type DocumentKind string

const (
	KindInvoice    DocumentKind = "invoice"
	KindQuote      DocumentKind = "quote"
	KindProforma   DocumentKind = "proforma"
	KindCreditNote DocumentKind = "credit_note"
)

// IsValidDocumentKind checks if a document kind is valid.
func IsValidDocumentKind(kind DocumentKind) bool {
	switch kind {
	case KindInvoice, KindQuote, KindProforma, KindCreditNote:
		return true
	default:
		return false
	}
}

// DocumentStatus represents the lifecycle state of a billing document.
type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "draft"
	DocumentSent      DocumentStatus = "sent"
	DocumentPaid      DocumentStatus = "paid"
	DocumentCancelled DocumentStatus = "cancelled"
)

// LineItem is one designation row on a billing document.
type LineItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unit_price"`
	VATRate     float64 `bson:"vat_rate" json:"vat_rate"` // percent
}

// ExclTax returns the line total before VAT.
func (li LineItem) ExclTax() float64 {
	return li.Quantity * li.UnitPrice
}

// VAT returns the VAT amount for the line.
func (li LineItem) VAT() float64 {
	return li.ExclTax() * li.VATRate / 100
}

// Document represents an invoice, quote, proforma or credit note. The
// client block is a snapshot taken at creation time, not a reference.
type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind        DocumentKind       `bson:"kind" json:"kind"`
	Number      string             `bson:"number" json:"number"`
	IssueDate   string             `bson:"issue_date" json:"issue_date"` // YYYY-MM-DD
	ClientName  string             `bson:"client_name" json:"client_name"`
	ClientAddr  string             `bson:"client_addr" json:"client_addr"`
	Items       []LineItem         `bson:"items" json:"items"`
	Status      DocumentStatus     `bson:"status" json:"status"`
	Notes       string             `bson:"notes" json:"notes"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// TotalExclTax returns the document total before VAT.
func (d *Document) TotalExclTax() float64 {
	var sum float64
	for _, li := range d.Items {
		sum += li.ExclTax()
	}
	return sum
}

// TotalVAT returns the total VAT across all lines.
func (d *Document) TotalVAT() float64 {
	var sum float64
	for _, li := range d.Items {
		sum += li.VAT()
	}
	return sum
}

// TotalInclTax returns the document total including VAT.
func (d *Document) TotalInclTax() float64 {
	return d.TotalExclTax() + d.TotalVAT()
}

// Filename builds the download name for the rendered PDF from the document
// number and issue date.
func (d *Document) Filename() string {
	return string(d.Kind) + "_" + d.Number + "_" + d.IssueDate + ".pdf"
}
