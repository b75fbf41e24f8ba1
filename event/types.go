package event

// Event is the marker interface every decoded redraw variant implements.
type Event interface {
	eventName() string
}

type named string

func (n named) eventName() string { return string(n) }

// RGB is a 24-bit color as decoded from a redraw event integer.
type RGB struct {
	R, G, B uint8
}

func rgbFromInt(v int) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// --- Grid events ---

type GridResize struct {
	named
	Grid, Width, Height int
}

type GridClear struct {
	named
	Grid int
}

type GridDestroy struct {
	named
	Grid int
}

type GridCursorGoto struct {
	named
	Grid, Row, Col int
}

type GridScroll struct {
	named
	Grid, Top, Bot, Left, Right, Rows int
}

// Cell is one run-length element of a grid_line event.
type Cell struct {
	Text   string
	HasHl  bool
	Hl     int
	Repeat int
}

type GridLine struct {
	named
	Grid, Row, ColStart int
	Cells               []Cell
}

// --- Highlights ---

// HlAttr is the decoded {foreground,background,special,flags,blend}
// attribute set from hl_attr_define's rgb_attr map.
type HlAttr struct {
	Foreground, Background, Special *RGB
	Reverse, Italic, Bold           bool
	Strikethrough, Underline        bool
	Undercurl, Underdouble          bool
	Underdotted, Underdashed        bool
	Blend                           int
}

type HlAttrDefine struct {
	named
	Id   int
	Attr HlAttr
}

type HlGroupSet struct {
	named
	Name string
	Id   int
}

type DefaultColorsSet struct {
	named
	Foreground, Background, Special RGB
}

// --- Mode ---

type ModeChange struct {
	named
	Mode     string
	ModeIdx  int
}

// CursorShapeInfo is one entry of mode_info_set's per-mode cursor table.
type CursorShapeInfo struct {
	CursorShape                   string // "block", "horizontal", "vertical"
	CellPercentage                int
	BlinkWait, BlinkOn, BlinkOff   int
	AttrId, AttrIdLm               int
	ShortName, Name                string
}

type ModeInfoSet struct {
	named
	CursorStyleEnabled bool
	Modes              []CursorShapeInfo
}

// --- Options ---

type OptionSet struct {
	named
	Name  string
	Value interface{}
}

// --- Windows ---

type WinPos struct {
	named
	Grid, Win, StartRow, StartCol, Width, Height int
}

type WinFloatPos struct {
	named
	Grid, Win                    int
	Anchor                       string // "NW", "NE", "SW", "SE"
	AnchorGrid                   int
	AnchorRow, AnchorCol         float64
	Focusable                    bool
	ZIndex                       int
}

type WinExternalPos struct {
	named
	Grid, Win int
}

type WinHide struct {
	named
	Grid int
}

type WinClose struct {
	named
	Grid int
}

type WinViewport struct {
	named
	Grid                                   int
	Topline, Botline, Curline, Curcol       int
	LineCount                               int
	ScrollDelta                             int
}

type WinViewportMargins struct {
	named
	Grid, Top, Bottom, Left, Right int
}

type WinExtmark struct {
	named
	Grid, NsId, MarkId, Row, Col int
}

// --- Popup menu ---

type PopupmenuItem struct {
	Word, Kind, Menu, Info string
}

type PopupmenuShow struct {
	named
	Items     []PopupmenuItem
	Selected  int
	Row, Col  int
	Grid      int
}

type PopupmenuSelect struct {
	named
	Selected int
}

type PopupmenuHide struct {
	named
}

// --- Cmdline ---

type CmdlineShow struct {
	named
	Content     []Cell
	Pos         int
	FirstC      string
	Prompt      string
	Indent      int
	Level       int
}

type CmdlinePos struct {
	named
	Pos, Level int
}

type CmdlineSpecialChar struct {
	named
	Char  string
	Shift bool
	Level int
}

type CmdlineHide struct {
	named
}

type CmdlineBlockShow struct {
	named
	Lines [][]Cell
}

type CmdlineBlockAppend struct {
	named
	Line []Cell
}

type CmdlineBlockHide struct {
	named
}

// --- Messages ---

type MsgShow struct {
	named
	Kind        string
	Content     []Cell
	ReplaceLast bool
}

type MsgShowmode struct {
	named
	Content []Cell
}

type MsgShowcmd struct {
	named
	Content []Cell
}

type MsgRuler struct {
	named
	Content []Cell
}

type MsgSetPos struct {
	named
	Grid int
	Row  int
	ScrolledIn bool
	Sep string
}

type MsgHistoryShow struct {
	named
	Entries []MsgHistoryEntry
}

type MsgHistoryEntry struct {
	Kind    string
	Content []Cell
}

type MsgClear struct {
	named
}

type MsgHistoryClear struct {
	named
}

// --- Misc ---

type TablineUpdate struct {
	named
	Current int
	Tabs    []TabInfo
}

type TabInfo struct {
	Tab  int
	Name string
}

type Chdir struct {
	named
	Path string
}

type MouseOn struct{ named }
type MouseOff struct{ named }
type BusyStart struct{ named }
type BusyStop struct{ named }
type Flush struct{ named }
type Suspend struct{ named }

type SetTitle struct {
	named
	Title string
}

type SetIcon struct {
	named
	Icon string
}

type UpdateMenu struct{ named }
type Bell struct{ named }
type VisualBell struct{ named }

// Unknown wraps an unrecognized event name, carried so callers can log
// and skip it without losing the rest of the batch.
type Unknown struct {
	named
	Args []interface{}
}
