package contracts

import (
	"errors"
	"io"
)

var SheetNotFoundError = errors.New("sheet not found")
var CellNotFoundError = errors.New("cell not found")

// CellState is the outward representation of one cell.
type CellState struct {
	CellId string `json:"cell_id"`
	Text   string `json:"text"`
	Value  string `json:"value"`
}

// SheetDump is the printable rectangle of a sheet.
type SheetDump struct {
	Size   Size       `json:"size"`
	Values [][]string `json:"values"`
	Texts  [][]string `json:"texts"`
}

// SheetRegistry serializes access to named sheets.
type SheetRegistry interface {
	SetCell(sheetId string, cellId string, text string) (*CellState, error)
	GetCell(sheetId string, cellId string) (*CellState, error)
	ClearCell(sheetId string, cellId string) error
	GetSheetDump(sheetId string) (*SheetDump, error)
	PrintValues(sheetId string, output io.Writer) error
	PrintTexts(sheetId string, output io.Writer) error
	Subscribe(sheetId string, cellId string, webhookUrl string) error
}
