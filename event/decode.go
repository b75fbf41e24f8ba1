package event

import "fmt"

// DecodeBatch decodes every occurrence of one named event within a redraw
// batch ("redraw" params element is [name, params1, params2, ...]; each
// paramsN is one occurrence). Malformed occurrences are skipped, not
// fatal, per the decode boundary's error-handling contract; skipped
// is the count of occurrences that failed to decode.
func DecodeBatch(name string, occurrences [][]interface{}) (events []Event, skipped int) {
	for _, args := range occurrences {
		ev, err := decodeOne(name, NewArgs(args))
		if err != nil {
			skipped++
			continue
		}
		events = append(events, ev)
	}
	return events, skipped
}

func decodeOne(name string, a *Args) (Event, error) {
	switch name {
	case "grid_resize":
		grid, err1 := a.Int()
		w, err2 := a.Int()
		h, err3 := a.Int()
		if err := firstErr(err1, err2, err3); err != nil {
			return nil, err
		}
		return GridResize{named: named(name), Grid: grid, Width: w, Height: h}, nil

	case "grid_clear":
		grid, err := a.Int()
		if err != nil {
			return nil, err
		}
		return GridClear{named: named(name), Grid: grid}, nil

	case "grid_destroy":
		grid, err := a.Int()
		if err != nil {
			return nil, err
		}
		return GridDestroy{named: named(name), Grid: grid}, nil

	case "grid_cursor_goto":
		grid, e1 := a.Int()
		row, e2 := a.Int()
		col, e3 := a.Int()
		if err := firstErr(e1, e2, e3); err != nil {
			return nil, err
		}
		return GridCursorGoto{named: named(name), Grid: grid, Row: row, Col: col}, nil

	case "grid_scroll":
		grid, e1 := a.Int()
		top, e2 := a.Int()
		bot, e3 := a.Int()
		left, e4 := a.Int()
		right, e5 := a.Int()
		rows, e6 := a.Int()
		if err := firstErr(e1, e2, e3, e4, e5, e6); err != nil {
			return nil, err
		}
		return GridScroll{named: named(name), Grid: grid, Top: top, Bot: bot, Left: left, Right: right, Rows: rows}, nil

	case "grid_line":
		grid, e1 := a.Int()
		row, e2 := a.Int()
		colStart, e3 := a.Int()
		rawCells, e4 := a.Array()
		if err := firstErr(e1, e2, e3, e4); err != nil {
			return nil, err
		}
		cells, err := decodeCells(rawCells)
		if err != nil {
			return nil, err
		}
		return GridLine{named: named(name), Grid: grid, Row: row, ColStart: colStart, Cells: cells}, nil

	case "hl_attr_define":
		id, e1 := a.Int()
		rgbMap, e2 := a.Map()
		if err := firstErr(e1, e2); err != nil {
			return nil, err
		}
		_, _ = a.Map() // cterm_attr, ignored (rgb-only UI)
		_, _ = a.Array()
		return HlAttrDefine{named: named(name), Id: id, Attr: decodeHlAttr(rgbMap)}, nil

	case "hl_group_set":
		n, e1 := a.String()
		id, e2 := a.Int()
		if err := firstErr(e1, e2); err != nil {
			return nil, err
		}
		return HlGroupSet{named: named(name), Name: n, Id: id}, nil

	case "default_colors_set":
		fg, e1 := a.Int()
		bg, e2 := a.Int()
		sp, e3 := a.Int()
		if err := firstErr(e1, e2, e3); err != nil {
			return nil, err
		}
		return DefaultColorsSet{named: named(name), Foreground: rgbFromInt(fg), Background: rgbFromInt(bg), Special: rgbFromInt(sp)}, nil

	case "mode_change":
		mode, e1 := a.String()
		idx, e2 := a.Int()
		if err := firstErr(e1, e2); err != nil {
			return nil, err
		}
		return ModeChange{named: named(name), Mode: mode, ModeIdx: idx}, nil

	case "mode_info_set":
		enabled, e1 := a.Bool()
		rawModes, e2 := a.Array()
		if err := firstErr(e1, e2); err != nil {
			return nil, err
		}
		modes := make([]CursorShapeInfo, 0, len(rawModes))
		for _, rm := range rawModes {
			m, ok := rm.(map[string]interface{})
			if !ok {
				continue
			}
			modes = append(modes, decodeCursorShapeInfo(m))
		}
		return ModeInfoSet{named: named(name), CursorStyleEnabled: enabled, Modes: modes}, nil

	case "option_set":
		n, e1 := a.String()
		v, e2 := a.Any()
		if err := firstErr(e1, e2); err != nil {
			return nil, err
		}
		return OptionSet{named: named(name), Name: n, Value: v}, nil

	case "win_pos":
		grid, e1 := a.Int()
		_, _ = a.Any() // win handle, opaque to us
		startRow, e2 := a.Int()
		startCol, e3 := a.Int()
		w, e4 := a.Int()
		h, e5 := a.Int()
		if err := firstErr(e1, e2, e3, e4, e5); err != nil {
			return nil, err
		}
		return WinPos{named: named(name), Grid: grid, StartRow: startRow, StartCol: startCol, Width: w, Height: h}, nil

	case "win_float_pos":
		grid, e1 := a.Int()
		_, _ = a.Any() // win handle
		anchor, e2 := a.String()
		anchorGrid, e3 := a.Int()
		anchorRow, e4 := a.Float()
		anchorCol, e5 := a.Float()
		focusable, e6 := a.Bool()
		zindex, errZ := a.Int()
		if errZ != nil {
			zindex = 50
		}
		if err := firstErr(e1, e2, e3, e4, e5, e6); err != nil {
			return nil, err
		}
		return WinFloatPos{named: named(name), Grid: grid, Anchor: anchor, AnchorGrid: anchorGrid, AnchorRow: anchorRow, AnchorCol: anchorCol, Focusable: focusable, ZIndex: zindex}, nil

	case "win_external_pos":
		grid, e1 := a.Int()
		if err := firstErr(e1); err != nil {
			return nil, err
		}
		return WinExternalPos{named: named(name), Grid: grid}, nil

	case "win_hide":
		grid, err := a.Int()
		if err != nil {
			return nil, err
		}
		return WinHide{named: named(name), Grid: grid}, nil

	case "win_close":
		grid, err := a.Int()
		if err != nil {
			return nil, err
		}
		return WinClose{named: named(name), Grid: grid}, nil

	case "win_viewport":
		grid, e1 := a.Int()
		_, _ = a.Any() // win handle
		topline, e2 := a.Int()
		botline, e3 := a.Int()
		curline, e4 := a.Int()
		curcol, e5 := a.Int()
		lineCount, e6 := a.Int()
		scrollDelta, errD := a.Int()
		if errD != nil {
			scrollDelta = 0
		}
		if err := firstErr(e1, e2, e3, e4, e5, e6); err != nil {
			return nil, err
		}
		return WinViewport{named: named(name), Grid: grid, Topline: topline, Botline: botline, Curline: curline, Curcol: curcol, LineCount: lineCount, ScrollDelta: scrollDelta}, nil

	case "win_viewport_margins":
		grid, e1 := a.Int()
		_, _ = a.Any() // win handle
		top, e2 := a.Int()
		bottom, e3 := a.Int()
		left, e4 := a.Int()
		right, e5 := a.Int()
		if err := firstErr(e1, e2, e3, e4, e5); err != nil {
			return nil, err
		}
		return WinViewportMargins{named: named(name), Grid: grid, Top: top, Bottom: bottom, Left: left, Right: right}, nil

	case "win_extmark":
		grid, e1 := a.Int()
		nsId, e2 := a.Int()
		markId, e3 := a.Int()
		row, e4 := a.Int()
		col, e5 := a.Int()
		if err := firstErr(e1, e2, e3, e4, e5); err != nil {
			return nil, err
		}
		return WinExtmark{named: named(name), Grid: grid, NsId: nsId, MarkId: markId, Row: row, Col: col}, nil

	case "popupmenu_show":
		rawItems, e1 := a.Array()
		selected, e2 := a.Int()
		row, e3 := a.Int()
		col, e4 := a.Int()
		grid, e5 := a.Int()
		if err := firstErr(e1, e2, e3, e4, e5); err != nil {
			return nil, err
		}
		items := make([]PopupmenuItem, 0, len(rawItems))
		for _, ri := range rawItems {
			tup, ok := ri.([]interface{})
			if !ok || len(tup) < 4 {
				continue
			}
			items = append(items, PopupmenuItem{
				Word: asString(tup[0]), Kind: asString(tup[1]),
				Menu: asString(tup[2]), Info: asString(tup[3]),
			})
		}
		return PopupmenuShow{named: named(name), Items: items, Selected: selected, Row: row, Col: col, Grid: grid}, nil

	case "popupmenu_select":
		selected, err := a.Int()
		if err != nil {
			return nil, err
		}
		return PopupmenuSelect{named: named(name), Selected: selected}, nil

	case "popupmenu_hide":
		return PopupmenuHide{named: named(name)}, nil

	case "cmdline_show":
		rawContent, e1 := a.Array()
		pos, e2 := a.Int()
		firstC, e3 := a.String()
		prompt, e4 := a.String()
		indent, e5 := a.Int()
		level, e6 := a.Int()
		if err := firstErr(e1, e2, e3, e4, e5, e6); err != nil {
			return nil, err
		}
		cells, err := decodeCells(rawContent)
		if err != nil {
			return nil, err
		}
		return CmdlineShow{named: named(name), Content: cells, Pos: pos, FirstC: firstC, Prompt: prompt, Indent: indent, Level: level}, nil

	case "cmdline_pos":
		pos, e1 := a.Int()
		level, e2 := a.Int()
		if err := firstErr(e1, e2); err != nil {
			return nil, err
		}
		return CmdlinePos{named: named(name), Pos: pos, Level: level}, nil

	case "cmdline_special_char":
		c, e1 := a.String()
		shift, e2 := a.Bool()
		level, e3 := a.Int()
		if err := firstErr(e1, e2, e3); err != nil {
			return nil, err
		}
		return CmdlineSpecialChar{named: named(name), Char: c, Shift: shift, Level: level}, nil

	case "cmdline_hide":
		return CmdlineHide{named: named(name)}, nil

	case "cmdline_block_show":
		rawLines, err := a.Array()
		if err != nil {
			return nil, err
		}
		lines := make([][]Cell, 0, len(rawLines))
		for _, rl := range rawLines {
			arr, ok := rl.([]interface{})
			if !ok {
				continue
			}
			cells, err := decodeCells(arr)
			if err != nil {
				continue
			}
			lines = append(lines, cells)
		}
		return CmdlineBlockShow{named: named(name), Lines: lines}, nil

	case "cmdline_block_append":
		rawLine, err := a.Array()
		if err != nil {
			return nil, err
		}
		cells, err := decodeCells(rawLine)
		if err != nil {
			return nil, err
		}
		return CmdlineBlockAppend{named: named(name), Line: cells}, nil

	case "cmdline_block_hide":
		return CmdlineBlockHide{named: named(name)}, nil

	case "msg_show":
		kind, e1 := a.String()
		rawContent, e2 := a.Array()
		replaceLast, e3 := a.Bool()
		if err := firstErr(e1, e2, e3); err != nil {
			return nil, err
		}
		cells, err := decodeCells(rawContent)
		if err != nil {
			return nil, err
		}
		return MsgShow{named: named(name), Kind: kind, Content: cells, ReplaceLast: replaceLast}, nil

	case "msg_showmode":
		rawContent, err := a.Array()
		if err != nil {
			return nil, err
		}
		cells, err := decodeCells(rawContent)
		if err != nil {
			return nil, err
		}
		return MsgShowmode{named: named(name), Content: cells}, nil

	case "msg_showcmd":
		rawContent, err := a.Array()
		if err != nil {
			return nil, err
		}
		cells, err := decodeCells(rawContent)
		if err != nil {
			return nil, err
		}
		return MsgShowcmd{named: named(name), Content: cells}, nil

	case "msg_ruler":
		rawContent, err := a.Array()
		if err != nil {
			return nil, err
		}
		cells, err := decodeCells(rawContent)
		if err != nil {
			return nil, err
		}
		return MsgRuler{named: named(name), Content: cells}, nil

	case "msg_set_pos":
		grid, e1 := a.Int()
		row, e2 := a.Int()
		scrolledIn, e3 := a.Bool()
		sep, e4 := a.String()
		if err := firstErr(e1, e2, e3, e4); err != nil {
			return nil, err
		}
		return MsgSetPos{named: named(name), Grid: grid, Row: row, ScrolledIn: scrolledIn, Sep: sep}, nil

	case "msg_history_show":
		rawEntries, err := a.Array()
		if err != nil {
			return nil, err
		}
		entries := make([]MsgHistoryEntry, 0, len(rawEntries))
		for _, re := range rawEntries {
			tup, ok := re.([]interface{})
			if !ok || len(tup) < 2 {
				continue
			}
			content, ok := tup[1].([]interface{})
			if !ok {
				continue
			}
			cells, err := decodeCells(content)
			if err != nil {
				continue
			}
			entries = append(entries, MsgHistoryEntry{Kind: asString(tup[0]), Content: cells})
		}
		return MsgHistoryShow{named: named(name), Entries: entries}, nil

	case "msg_clear":
		return MsgClear{named: named(name)}, nil

	case "msg_history_clear":
		return MsgHistoryClear{named: named(name)}, nil

	case "tabline_update":
		current, e1 := a.Int()
		rawTabs, e2 := a.Array()
		if err := firstErr(e1, e2); err != nil {
			return nil, err
		}
		tabs := make([]TabInfo, 0, len(rawTabs))
		for _, rt := range rawTabs {
			m, ok := rt.(map[string]interface{})
			if !ok {
				continue
			}
			tab, _ := toInt(m["tab"])
			tabs = append(tabs, TabInfo{Tab: tab, Name: asString(m["name"])})
		}
		return TablineUpdate{named: named(name), Current: current, Tabs: tabs}, nil

	case "chdir":
		path, err := a.String()
		if err != nil {
			return nil, err
		}
		return Chdir{named: named(name), Path: path}, nil

	case "mouse_on":
		return MouseOn{named: named(name)}, nil
	case "mouse_off":
		return MouseOff{named: named(name)}, nil
	case "busy_start":
		return BusyStart{named: named(name)}, nil
	case "busy_stop":
		return BusyStop{named: named(name)}, nil
	case "flush":
		return Flush{named: named(name)}, nil
	case "suspend":
		return Suspend{named: named(name)}, nil

	case "set_title":
		title, err := a.String()
		if err != nil {
			return nil, err
		}
		return SetTitle{named: named(name), Title: title}, nil

	case "set_icon":
		icon, err := a.String()
		if err != nil {
			return nil, err
		}
		return SetIcon{named: named(name), Icon: icon}, nil

	case "update_menu":
		return UpdateMenu{named: named(name)}, nil
	case "bell":
		return Bell{named: named(name)}, nil
	case "visual_bell":
		return VisualBell{named: named(name)}, nil

	default:
		return Unknown{named: named(name), Args: a.Remaining()}, nil
	}
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func decodeCells(raw []interface{}) ([]Cell, error) {
	cells := make([]Cell, 0, len(raw))
	for _, rc := range raw {
		tup, ok := rc.([]interface{})
		if !ok || len(tup) == 0 {
			return nil, fmt.Errorf("event: malformed cell %#v", rc)
		}
		text, ok := tup[0].(string)
		if !ok {
			return nil, fmt.Errorf("event: cell text is %T, want string", tup[0])
		}
		c := Cell{Text: text, Repeat: 1}
		if len(tup) > 1 && tup[1] != nil {
			if n, err := toInt(tup[1]); err == nil {
				c.HasHl = true
				c.Hl = n
			}
		}
		if len(tup) > 2 && tup[2] != nil {
			if n, err := toInt(tup[2]); err == nil {
				c.Repeat = n
			}
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func decodeHlAttr(m map[string]interface{}) HlAttr {
	var h HlAttr
	if v, ok := m["foreground"]; ok {
		if n, err := toInt(v); err == nil {
			c := rgbFromInt(n)
			h.Foreground = &c
		}
	}
	if v, ok := m["background"]; ok {
		if n, err := toInt(v); err == nil {
			c := rgbFromInt(n)
			h.Background = &c
		}
	}
	if v, ok := m["special"]; ok {
		if n, err := toInt(v); err == nil {
			c := rgbFromInt(n)
			h.Special = &c
		}
	}
	h.Reverse = asBool(m["reverse"])
	h.Italic = asBool(m["italic"])
	h.Bold = asBool(m["bold"])
	h.Strikethrough = asBool(m["strikethrough"])
	h.Underline = asBool(m["underline"])
	h.Undercurl = asBool(m["undercurl"])
	h.Underdouble = asBool(m["underdouble"])
	h.Underdotted = asBool(m["underdotted"])
	h.Underdashed = asBool(m["underdashed"])
	h.Blend = 0
	if v, ok := m["blend"]; ok {
		if n, err := toInt(v); err == nil {
			h.Blend = n
		}
	}
	return h
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func decodeCursorShapeInfo(m map[string]interface{}) CursorShapeInfo {
	var c CursorShapeInfo
	c.CursorShape = asString(m["cursor_shape"])
	c.ShortName = asString(m["short_name"])
	c.Name = asString(m["name"])
	if n, err := toInt(m["cell_percentage"]); err == nil {
		c.CellPercentage = n
	}
	if n, err := toInt(m["blinkwait"]); err == nil {
		c.BlinkWait = n
	}
	if n, err := toInt(m["blinkon"]); err == nil {
		c.BlinkOn = n
	}
	if n, err := toInt(m["blinkoff"]); err == nil {
		c.BlinkOff = n
	}
	if n, err := toInt(m["attr_id"]); err == nil {
		c.AttrId = n
	}
	if n, err := toInt(m["attr_id_lm"]); err == nil {
		c.AttrIdLm = n
	}
	return c
}
