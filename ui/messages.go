package ui

import "github.com/novagrid/novagrid/event"

// Message is one displayed or historical message line.
type Message struct {
	Kind    string
	Content []event.Cell
}

// Messages owns the msg_show/msg_history/msg_ruler sub-state: the
// currently shown message stack, the persistent history, and the three
// single-line status fields.
type Messages struct {
	Show    []Message
	History []Message

	ShowmodeContent []event.Cell
	ShowcmdContent  []event.Cell
	RulerContent    []event.Cell
}

// ShowMessage applies a msg_show event. ReplaceLast pops the current top
// of Show before pushing the new message, per the "replace_last=Replace"
// wire contract.
func (m *Messages) ShowMessage(ev event.MsgShow) {
	if ev.ReplaceLast && len(m.Show) > 0 {
		m.Show = m.Show[:len(m.Show)-1]
	}
	m.Show = append(m.Show, Message{Kind: ev.Kind, Content: ev.Content})
}

// Showcmd records the showcmd status content.
func (m *Messages) Showcmd(content []event.Cell) {
	m.ShowcmdContent = content
}

// ShowmodeSet records the showmode status content.
func (m *Messages) ShowmodeSet(content []event.Cell) {
	m.ShowmodeContent = content
}

// Ruler records the ruler status content.
func (m *Messages) Ruler(content []event.Cell) {
	m.RulerContent = content
}

// Clear empties the currently-shown message stack (msg_clear).
func (m *Messages) Clear() {
	m.Show = nil
}

// HistoryShow replaces the persistent message history.
func (m *Messages) HistoryShow(entries []event.MsgHistoryEntry) {
	hist := make([]Message, len(entries))
	for i, e := range entries {
		hist[i] = Message{Kind: e.Kind, Content: e.Content}
	}
	m.History = hist
}

// HistoryClear empties the persistent message history.
func (m *Messages) HistoryClear() {
	m.History = nil
}
