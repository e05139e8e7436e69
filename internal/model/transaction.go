package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTransaction is one ledger-export line exactly as the source system wrote it.
type RawTransaction struct {
	Date            time.Time
	Type            string // Invoice, Journal Entry, etc.
	Num             string
	Name            string // payee / counterparty
	Class           string
	Memo            string
	AccountFullName string          // hierarchical label, e.g. "4000 Sales:4010 Discounts"
	Amount          decimal.Decimal // signed; negative = contra/outflow
	Balance         decimal.Decimal // running balance, informational only
}

// Transaction is a RawTransaction plus fields derived at load time.
type Transaction struct {
	RawTransaction

	ID                string
	Month             string // "2006-01" key, from the transaction's own date
	AccountCode       string
	ParentAccountCode string // "" = top-level account
}
