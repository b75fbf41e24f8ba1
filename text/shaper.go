package text

import "github.com/rivo/uniseg"

// Cluster is one grapheme cluster produced by the shaping loop: the
// runes that compose it and the cell range it covers in its source row.
type Cluster struct {
	Runes      []rune
	CellStart  int
	CellEnd    int
	HlID       uint64
}

// Token is one element of the per-row token stream fed to the cluster
// parser: a cell's rune plus the highlight id that colors it.
type Token struct {
	Rune rune
	Cell int
	HlID uint64
}

// Clusters groups a row's token stream into grapheme clusters using
// Unicode text segmentation, so that combining marks and
// emoji-with-modifier sequences shape as one glyph unit instead of one
// per rune.
func Clusters(tokens []Token) []Cluster {
	if len(tokens) == 0 {
		return nil
	}

	runes := make([]rune, len(tokens))
	for i, t := range tokens {
		runes[i] = t.Rune
	}

	var clusters []Cluster
	state := -1
	start := 0
	remaining := runes
	for len(remaining) > 0 {
		var cluster []rune
		var rest []rune
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(remaining, state)
		n := len(cluster)
		clusters = append(clusters, Cluster{
			Runes:     cluster,
			CellStart: tokens[start].Cell,
			CellEnd:   tokens[start+n-1].Cell + 1,
			HlID:      tokens[start].HlID,
		})
		start += n
		remaining = rest
	}
	return clusters
}

// FontStyle derives the {Regular, Bold, Italic, BoldItalic} cascade
// slot from a highlight's bold/italic attribute bits.
func FontStyle(bold, italic bool) Style {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

// Coverage reports whether a cascade candidate can shape every rune in
// a cluster: Complete if the exact style's face covers them all, Keep
// if only the family's regular face does (a fallback candidate worth
// remembering), Discard otherwise.
type Coverage int

const (
	Discard Coverage = iota
	Keep
	Complete
)

// Family is one entry in the font cascade: a face per cascade style,
// any of which may be nil if the family doesn't ship that variant.
type Family struct {
	Faces [4]*Face
}

func (f Family) covers(face *Face, runes []rune) bool {
	if face == nil {
		return false
	}
	for _, r := range runes {
		if _, ok := face.Face.GlyphAdvance(r); !ok {
			return false
		}
	}
	return true
}

// Covers reports this family's Coverage of a cluster at the requested
// style, following the cascade rule: the exact style first, then the
// family's regular face as a Keep candidate.
func (f Family) Covers(style Style, runes []rune) (Coverage, Style) {
	if f.covers(f.Faces[style], runes) {
		return Complete, style
	}
	if style != Regular && f.covers(f.Faces[Regular], runes) {
		return Keep, Regular
	}
	return Discard, style
}

// Cascade walks an ordered font family list and picks the first family
// whose requested style (or regular fallback) covers every rune in the
// cluster: fonts are tried in order, a
// Complete match at the requested style wins immediately, a Keep
// (family's regular face) is remembered but not returned early, and the
// first remembered Keep wins if no later family completes.
func Cascade(families []Family, style Style, runes []rune) (fontIndex int, resolved Style, ok bool) {
	keepIndex := -1
	for i, fam := range families {
		cov, s := fam.Covers(style, runes)
		if cov == Complete {
			return i, s, true
		}
		if cov == Keep && keepIndex < 0 {
			keepIndex = i
		}
	}
	if keepIndex >= 0 {
		return keepIndex, Regular, true
	}
	return 0, style, false
}
