package words

import "github.com/forzagreen/n2words-sub000/lang"

// maxScaleIndex returns the largest group scale index the profile can name.
func maxScaleIndex(p *lang.Profile) int {
	switch p.ScaleMode {
	case lang.ScaleThousand:
		return len(p.ScaleWords) + 1
	case lang.ScaleCompound:
		return 2*len(p.CompoundPairs) + 1
	case lang.ScaleInflected:
		max := 0
		for idx := range p.PluralForms {
			if idx > max {
				max = idx
			}
		}
		return max
	default: // ScaleSimple, ScaleMyriad
		return len(p.ScaleWords)
	}
}

// scaleWord resolves the word for scale index idx multiplied by v. Index
// zero is the trailing group and carries no scale word.
func scaleWord(p *lang.Profile, idx int, v int64) string {
	if idx == 0 {
		return ""
	}
	switch p.ScaleMode {
	case lang.ScaleThousand:
		if idx == 1 {
			return thousandWord(p, v)
		}
		if pair, ok := p.ScalePairs[idx]; ok {
			return pick2(pair, v)
		}
		return p.ScaleWords[idx-2]
	case lang.ScaleCompound:
		if idx == 1 {
			return p.Thousand
		}
		if idx%2 == 0 {
			return pick2(p.CompoundPairs[idx/2-1], v)
		}
		// An odd index is a thousand of the named scale below it, always
		// plural ("mil millones").
		return p.Thousand + " " + p.CompoundPairs[(idx-1)/2-1][1]
	case lang.ScaleInflected:
		return pluralize(p, v, p.PluralForms[idx])
	default: // ScaleSimple, ScaleMyriad
		return p.ScaleWords[idx-1]
	}
}

func thousandWord(p *lang.Profile, v int64) string {
	if v != 1 && p.ThousandPlural != "" {
		return p.ThousandPlural
	}
	return p.Thousand
}

func pick2(pair [2]string, v int64) string {
	if v == 1 {
		return pair[0]
	}
	return pair[1]
}
