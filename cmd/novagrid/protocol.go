package main

import (
	"fmt"

	"github.com/novagrid/novagrid/input"
	"github.com/novagrid/novagrid/render"
	"github.com/novagrid/novagrid/text"
)

// notification is a fire-and-forget unit of work queued by the
// editor-reader goroutine for the UI task to apply on its next drain --
// either a decoded "redraw" batch or a neophyte.* setter. apply runs on
// the UI task, the only goroutine allowed to touch Loop/Device state
type notification struct {
	method string
	apply  func() error
}

// request is a neophyte.* query: the editor-reader goroutine blocks on
// reply until the UI task runs handle and answers, since the RPC
// response the reader sends back must reflect state only the UI task
// may read safely.
type request struct {
	method string
	handle func() (interface{}, error)
	reply  chan requestResult
}

type requestResult struct {
	value interface{}
	err   error
}

// protocol implements the neophyte.* notifications and requests
// the editor uses to configure the frontend beyond the standard
// ui-linegrid events. It holds no state of its own beyond the font
// cascade reference -- every setting it exposes lives on the Loop or
// Device it was constructed with, so a plain field read always answers
// the matching getter.
type protocol struct {
	loop     *input.Loop
	families []text.Family
}

func newProtocol(loop *input.Loop, families []text.Family) *protocol {
	return &protocol{loop: loop, families: families}
}

// dispatch is the func passed to rpc.Endpoint.RunReader. It never calls
// into Loop/Device directly -- every method either queues a notification
// (fire-and-forget, matching the wire notification it answers) or a
// request (blocks this goroutine until the UI task replies), per the
// single-mutator concurrency model.
func (p *protocol) dispatch(method string, params []interface{}, notifyCh chan<- notification, requestCh chan<- request) (interface{}, error) {
	if method == "redraw" {
		notifyCh <- notification{method: method, apply: func() error {
			return p.loop.HandleNotification(method, params)
		}}
		render.PostEmptyEvent()
		return nil, nil
	}

	if apply, ok := p.setter(method, params); ok {
		notifyCh <- notification{method: method, apply: apply}
		render.PostEmptyEvent()
		return nil, nil
	}

	if handle, ok := p.getter(method, params); ok {
		reply := make(chan requestResult, 1)
		requestCh <- request{method: method, handle: handle, reply: reply}
		render.PostEmptyEvent()
		r := <-reply
		return r.value, r.err
	}

	return nil, fmt.Errorf("novagrid: unhandled method %q", method)
}

// setter resolves the neophyte.* notifications (set_*, enable_*/
// disable_*, buf_leave, leave, start_render/end_render) that mutate
// frontend state and return nothing to the editor.
func (p *protocol) setter(method string, params []interface{}) (func() error, bool) {
	l := p.loop
	switch method {
	case "neophyte.set_font_width":
		v, err := floatArg(params, 0)
		return func() error {
			if err != nil {
				return err
			}
			l.CellWidth = float32(v)
			l.Builder.Metrics.CellWidth = float32(v)
			return nil
		}, true

	case "neophyte.set_font_height":
		v, err := floatArg(params, 0)
		return func() error {
			if err != nil {
				return err
			}
			l.CellHeight = float32(v)
			l.Builder.Metrics.CellHeight = float32(v)
			return nil
		}, true

	case "neophyte.set_fonts":
		return func() error {
			families, err := fontsFromParams(params)
			if err != nil {
				return err
			}
			p.families = families
			l.Builder.Families = families
			l.Builder.Cache = text.NewCache(families)
			return nil
		}, true

	case "neophyte.set_cursor_speed":
		v, err := floatArg(params, 0)
		return func() error {
			if err != nil {
				return err
			}
			l.CursorSpeed = float32(v)
			return nil
		}, true

	case "neophyte.set_scroll_speed":
		v, err := floatArg(params, 0)
		return func() error {
			if err != nil {
				return err
			}
			l.ScrollSpeed = float32(v)
			return nil
		}, true

	case "neophyte.set_underline_offset":
		v, err := floatArg(params, 0)
		return func() error {
			if err != nil {
				return err
			}
			l.Builder.Metrics.UnderlineOffset = float32(v)
			return nil
		}, true

	case "neophyte.set_render_size":
		w, errW := intArg(params, 0)
		h, errH := intArg(params, 1)
		return func() error {
			if errW != nil {
				return errW
			}
			if errH != nil {
				return errH
			}
			l.Targets.Resize(w, h)
			return nil
		}, true

	case "neophyte.unset_render_size":
		return func() error {
			l.Targets.Resize(l.Device.Width, l.Device.Height)
			return nil
		}, true

	case "neophyte.set_bg_override":
		r, errR := floatArg(params, 0)
		g, errG := floatArg(params, 1)
		b, errB := floatArg(params, 2)
		a, errA := floatArg(params, 3)
		return func() error {
			for _, err := range []error{errR, errG, errB, errA} {
				if err != nil {
					return err
				}
			}
			l.BgOverride.Set = true
			l.BgOverride.Color = [4]float32{float32(r), float32(g), float32(b), float32(a)}
			return nil
		}, true

	case "neophyte.set_fullscreen":
		v, err := boolArg(params, 0)
		return func() error {
			if err != nil {
				return err
			}
			l.Device.SetFullscreen(v)
			return nil
		}, true

	case "neophyte.enable_raw_input":
		return func() error { l.RawInput = true; return nil }, true
	case "neophyte.disable_raw_input":
		return func() error { l.RawInput = false; return nil }, true
	case "neophyte.enable_frame_events":
		return func() error { l.FrameEvents = true; return nil }, true
	case "neophyte.disable_frame_events":
		return func() error { l.FrameEvents = false; return nil }, true

	case "neophyte.buf_leave":
		// The next win_viewport's scroll_delta belongs to the buffer switch,
		// not to a scroll, so ui.State drops it.
		return func() error { l.State.BufLeave = true; return nil }, true

	case "neophyte.start_render", "neophyte.end_render":
		// The PNG frame dump these bracket is out of scope; accept and
		// no-op so the editor doesn't see an unhandled-method error.
		return func() error { return nil }, true

	case "neophyte.leave":
		return func() error {
			l.Device.Window.SetShouldClose(true)
			return nil
		}, true

	default:
		return nil, false
	}
}

// getter resolves the neophyte.* requests that read back frontend
// state, each running on the UI task via requestCh so it observes a
// consistent snapshot alongside Redraw's own mutations.
func (p *protocol) getter(method string, params []interface{}) (func() (interface{}, error), bool) {
	l := p.loop
	switch method {
	case "neophyte.is_running":
		return func() (interface{}, error) { return true, nil }, true

	case "neophyte.get_fonts":
		return func() (interface{}, error) {
			out := make([]interface{}, len(p.families))
			for i, fam := range p.families {
				em := 0.0
				if fam.Faces[text.Regular] != nil {
					em = fam.Faces[text.Regular].Em
				}
				out[i] = map[string]interface{}{
					"size":        em,
					"bold":        fam.Faces[text.Bold] != nil,
					"italic":      fam.Faces[text.Italic] != nil,
					"bold_italic": fam.Faces[text.BoldItalic] != nil,
				}
			}
			return out, nil
		}, true

	case "neophyte.get_cursor_speed":
		return func() (interface{}, error) { return float64(l.CursorSpeed), nil }, true

	case "neophyte.get_scroll_speed":
		return func() (interface{}, error) { return float64(l.ScrollSpeed), nil }, true

	case "neophyte.get_font_width":
		return func() (interface{}, error) { return float64(l.CellWidth), nil }, true

	case "neophyte.get_font_height":
		return func() (interface{}, error) { return float64(l.CellHeight), nil }, true

	case "neophyte.get_underline_offset":
		return func() (interface{}, error) { return float64(l.Builder.Metrics.UnderlineOffset), nil }, true

	case "neophyte.get_render_size":
		return func() (interface{}, error) {
			return map[string]interface{}{"width": l.Targets.Width, "height": l.Targets.Height}, nil
		}, true

	case "neophyte.get_fullscreen":
		return func() (interface{}, error) { return l.Device.Fullscreen(), nil }, true

	default:
		return nil, false
	}
}

// fontsFromParams decodes neophyte.set_fonts's argument: a list of
// {regular, bold, italic, bold_italic, size} maps, each path loaded
// from disk the same way the frontend's initial cascade was.
func fontsFromParams(params []interface{}) ([]text.Family, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("novagrid: set_fonts: missing argument")
	}
	list, ok := params[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("novagrid: set_fonts: expected array, got %T", params[0])
	}

	families := make([]text.Family, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("novagrid: set_fonts: expected map entry, got %T", entry)
		}
		em, err := mapFloat(m, "size")
		if err != nil {
			return nil, err
		}
		var fam text.Family
		if path, ok := m["regular"].(string); ok && path != "" {
			if fam.Faces[text.Regular], err = loadFace(path, em); err != nil {
				return nil, err
			}
		} else {
			return nil, fmt.Errorf("novagrid: set_fonts: entry missing regular path")
		}
		if path, ok := m["bold"].(string); ok && path != "" {
			if fam.Faces[text.Bold], err = loadFace(path, em); err != nil {
				return nil, err
			}
		}
		if path, ok := m["italic"].(string); ok && path != "" {
			if fam.Faces[text.Italic], err = loadFace(path, em); err != nil {
				return nil, err
			}
		}
		if path, ok := m["bold_italic"].(string); ok && path != "" {
			if fam.Faces[text.BoldItalic], err = loadFace(path, em); err != nil {
				return nil, err
			}
		}
		families = append(families, fam)
	}
	return families, nil
}

func mapFloat(m map[string]interface{}, key string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("novagrid: set_fonts: missing %q", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("novagrid: set_fonts: %q has type %T", key, v)
	}
}

// floatArg, intArg and boolArg extract a typed positional argument from
// a decoded params tuple. MessagePack numbers surface as int64, uint64
// or float64 depending on how the value was encoded (mirroring
// rpc.toInt's own type switch), so both integer and float wire
// representations are accepted for numeric args.
func floatArg(params []interface{}, i int) (float64, error) {
	if i >= len(params) {
		return 0, fmt.Errorf("novagrid: missing argument %d", i)
	}
	switch n := params[i].(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("novagrid: argument %d: expected number, got %T", i, params[i])
	}
}

func intArg(params []interface{}, i int) (int, error) {
	v, err := floatArg(params, i)
	return int(v), err
}

func boolArg(params []interface{}, i int) (bool, error) {
	if i >= len(params) {
		return false, fmt.Errorf("novagrid: missing argument %d", i)
	}
	b, ok := params[i].(bool)
	if !ok {
		return false, fmt.Errorf("novagrid: argument %d: expected bool, got %T", i, params[i])
	}
	return b, nil
}
