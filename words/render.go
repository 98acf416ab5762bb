package words

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forzagreen/n2words-sub000/lang"
)

// part is one rendered digit group together with its scale index and
// numeric value; the separator rules need both.
type part struct {
	text string
	idx  int
	val  int64
}

func renderInteger(p *lang.Profile, digits string, g lang.Gender) (string, error) {
	if digits == "0" {
		return p.Zero, nil
	}
	if p.RenderWhole != nil {
		// The MaxDigits cap keeps the value well inside int64.
		n, _ := strconv.ParseInt(digits, 10, 64)
		return p.RenderWhole(n, g), nil
	}

	groups := splitGroups(digits, p.GroupSize())
	top := len(groups) - 1
	if max := maxScaleIndex(p); top > max {
		return "", fmt.Errorf("%w: %s names scales up to 10^%d, input needs 10^%d",
			ErrScaleOutOfRange, p.Code, max*p.GroupSize(), top*p.GroupSize())
	}

	parts := make([]part, 0, len(groups))
	for i, v := range groups {
		if v == 0 {
			continue
		}
		parts = append(parts, renderGroup(p, v, top-i, g))
	}
	return compose(p, parts), nil
}

// renderGroup renders one nonzero digit group and attaches its scale word.
func renderGroup(p *lang.Profile, v int64, idx int, outer lang.Gender) part {
	g := lang.GenderDefault
	if idx == 0 {
		g = outer
	}
	if p.FeminineScales[idx] {
		g = lang.Feminine
	}
	beforeScale := idx > 0

	var text string
	switch {
	case p.SegmentOverride != nil:
		text = p.SegmentOverride(v, g, beforeScale)
	case p.ScaleMode == lang.ScaleMyriad:
		text = renderMyriad(p, v, beforeScale)
	default:
		text = renderSegment(p, v, g, beforeScale)
	}

	// A multiplier of one may be silent before its scale word. Odd long-
	// scale indices compose with the thousand word and elide like it.
	if v == 1 && beforeScale {
		switch {
		case idx == 1 && p.OmitOneThousand:
			text = ""
		case idx >= 2 && p.OmitOneScale:
			text = ""
		case p.ScaleMode == lang.ScaleCompound && idx%2 == 1 && p.OmitOneThousand:
			text = ""
		}
	}

	scale := scaleWord(p, idx, v)
	switch {
	case scale == "":
	case text == "":
		text = scale
	case p.MergeThousand && idx == 1:
		text += scale
	default:
		text += p.ScaleJoin + scale
	}
	return part{text: text, idx: idx, val: v}
}

// renderSegment renders a group of up to three digits from the profile's
// vocabulary tables.
func renderSegment(p *lang.Profile, v int64, g lang.Gender, beforeScale bool) string {
	h := v / 100
	rem := v % 100

	var hundred string
	switch {
	case h == 0:
	case h == 1 && rem == 0 && p.HundredAlone != "":
		hundred = p.HundredAlone
	case p.Hundreds[1] != "":
		hundred = p.Hundreds[h]
	case h == 1 && p.OmitOneHundred:
		hundred = p.Hundred
	default:
		hundred = onesWord(p, h, lang.GenderDefault, true) + p.SegmentSep + p.Hundred
	}

	var rest string
	t, o := rem/10, rem%10
	switch {
	case rem == 0:
	case rem < 10:
		rest = onesWord(p, o, g, beforeScale)
	case rem < 20:
		rest = p.Teens[o]
	case o == 0:
		rest = p.Tens[t]
	case p.TensReversed:
		rest = onesWord(p, o, lang.GenderDefault, p.TensUnitMultiplier) + p.TensJoin + p.Tens[t]
	default:
		rest = p.Tens[t] + p.TensJoin + onesWord(p, o, g, beforeScale)
	}

	switch {
	case hundred == "":
		return rest
	case rest == "":
		return hundred
	case p.AfterHundred != "":
		return hundred + p.AfterHundred + rest
	default:
		return hundred + p.SegmentSep + rest
	}
}

// renderMyriad renders one base-10000 group as a single unbroken string.
func renderMyriad(p *lang.Profile, v int64, beforeScale bool) string {
	var b strings.Builder
	th := v / 1000
	h := v / 100 % 10
	t := v / 10 % 10
	o := v % 10

	if th > 0 {
		keepOne := beforeScale && p.MyriadThousandOne
		if th != 1 || !p.OmitOneMyriadSub || keepOne {
			b.WriteString(p.Ones[th])
		}
		b.WriteString(p.Thousand)
	}
	if h > 0 {
		if h != 1 || !p.OmitOneMyriadSub {
			b.WriteString(p.Ones[h])
		}
		b.WriteString(p.Hundred)
	}
	if t > 0 {
		if t != 1 || !p.OmitOneMyriadSub {
			b.WriteString(p.Ones[t])
		}
		b.WriteString(p.TenWord)
	}
	if o > 0 {
		b.WriteString(p.Ones[o])
	}
	return b.String()
}

// onesWord returns the digit word for d. The feminine form wins over the
// multiplier form where both apply ("eine Million").
func onesWord(p *lang.Profile, d int64, g lang.Gender, multiplier bool) string {
	if g == lang.Feminine && p.OnesFeminine[d] != "" {
		return p.OnesFeminine[d]
	}
	if multiplier && p.OnesMultiplier[d] != "" {
		return p.OnesMultiplier[d]
	}
	return p.Ones[d]
}

// compose joins the rendered groups with the profile's separators.
func compose(p *lang.Profile, parts []part) string {
	if len(parts) == 0 {
		return p.Zero
	}
	min := p.ScaleSepMin
	if min < 1 {
		min = 1
	}

	var b strings.Builder
	for i, pt := range parts {
		if i > 0 {
			switch {
			case p.ChunkConnector != "" && i == len(parts)-1 && pt.idx == 0 && pt.val < 100:
				b.WriteString(p.ChunkConnector)
			case parts[i-1].idx >= min:
				b.WriteString(p.ScaleSep)
			default:
				b.WriteString(p.WordSep)
			}
		}
		b.WriteString(pt.text)
	}
	return b.String()
}
