package main

import (
	"fmt"
	"io"
	"sheetCalc/contracts"
	"strings"
	"sync"
)

// SheetRegistry exposes named sheets over the single-threaded evaluation
// core. One mutex serializes every edit and read, as the core requires.
type SheetRegistry struct {
	mutex             sync.Mutex
	sheets            map[string]*Sheet
	webhookDispatcher contracts.WebhookDispatcher
}

func NewSheetRegistry(webhookDispatcher contracts.WebhookDispatcher) *SheetRegistry {
	return &SheetRegistry{
		sheets:            map[string]*Sheet{},
		webhookDispatcher: webhookDispatcher,
	}
}

func (r *SheetRegistry) SetCell(sheetId string, cellId string, text string) (*contracts.CellState, error) {
	pos, err := parseCellId(cellId)
	if err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	sheetId = strings.ToLower(sheetId)
	sheet, ok := r.sheets[sheetId]
	if !ok {
		sheet = NewSheet()
		r.sheets[sheetId] = sheet
	}

	if err = sheet.SetCell(pos, text); err != nil {
		return nil, err
	}

	r.notifyDependants(sheetId, sheet, pos)

	return makeCellState(sheet, pos), nil
}

func (r *SheetRegistry) GetCell(sheetId string, cellId string) (*contracts.CellState, error) {
	pos, err := parseCellId(cellId)
	if err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	sheet, err := r.lookupSheet(sheetId)
	if err != nil {
		return nil, err
	}

	if sheet.cellAt(pos) == nil {
		return nil, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	return makeCellState(sheet, pos), nil
}

func (r *SheetRegistry) ClearCell(sheetId string, cellId string) error {
	pos, err := parseCellId(cellId)
	if err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	sheet, err := r.lookupSheet(sheetId)
	if err != nil {
		return err
	}

	if err = sheet.ClearCell(pos); err != nil {
		return err
	}

	r.notifyDependants(strings.ToLower(sheetId), sheet, pos)

	return nil
}

func (r *SheetRegistry) GetSheetDump(sheetId string) (*contracts.SheetDump, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	sheet, err := r.lookupSheet(sheetId)
	if err != nil {
		return nil, err
	}

	size := sheet.GetPrintableSize()
	dump := &contracts.SheetDump{
		Size:   size,
		Values: make([][]string, size.Rows),
		Texts:  make([][]string, size.Rows),
	}

	for row := 0; row < size.Rows; row++ {
		dump.Values[row] = make([]string, size.Cols)
		dump.Texts[row] = make([]string, size.Cols)
		for col := 0; col < size.Cols; col++ {
			cell := sheet.cellAt(contracts.Position{Row: row, Col: col})
			if cell == nil || cell.GetText() == "" {
				continue
			}
			dump.Values[row][col] = contracts.FormatValue(cell.GetValue())
			dump.Texts[row][col] = cell.GetText()
		}
	}

	return dump, nil
}

func (r *SheetRegistry) PrintValues(sheetId string, output io.Writer) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	sheet, err := r.lookupSheet(sheetId)
	if err != nil {
		return err
	}

	return sheet.PrintValues(output)
}

func (r *SheetRegistry) PrintTexts(sheetId string, output io.Writer) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	sheet, err := r.lookupSheet(sheetId)
	if err != nil {
		return err
	}

	return sheet.PrintTexts(output)
}

func (r *SheetRegistry) Subscribe(sheetId string, cellId string, webhookUrl string) error {
	pos, err := parseCellId(cellId)
	if err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.webhookDispatcher.SetWebhookUrl(strings.ToLower(sheetId), pos, webhookUrl)

	return nil
}

func (r *SheetRegistry) lookupSheet(sheetId string) (*Sheet, error) {
	sheet, ok := r.sheets[strings.ToLower(sheetId)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}
	return sheet, nil
}

// notifyDependants pushes the edited cell plus every cell whose value changed
// with it to the webhook dispatcher.
func (r *SheetRegistry) notifyDependants(sheetId string, sheet *Sheet, pos contracts.Position) {
	if r.webhookDispatcher == nil {
		return
	}

	changed := append([]contracts.Position{pos}, sheet.GetDependants(pos)...)
	cells := make([]*contracts.CellState, 0, len(changed))
	for _, changedPos := range changed {
		cells = append(cells, makeCellState(sheet, changedPos))
	}

	r.webhookDispatcher.Notify(sheetId, cells)
}

// parseCellId maps a textual cell id to a position. Lowercase input is
// accepted, the grammar itself is uppercase.
func parseCellId(cellId string) (contracts.Position, error) {
	pos := contracts.PositionFromString(strings.ToUpper(cellId))
	if !pos.IsValid() {
		return pos, fmt.Errorf("cell_id `%s`: %w", cellId, contracts.InvalidPositionError)
	}
	return pos, nil
}

func makeCellState(sheet *Sheet, pos contracts.Position) *contracts.CellState {
	state := &contracts.CellState{CellId: pos.String()}

	cell := sheet.cellAt(pos)
	if cell != nil {
		state.Text = cell.GetText()
		state.Value = contracts.FormatValue(cell.GetValue())
	}

	return state
}
