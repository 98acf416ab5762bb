package words

// splitGroups splits a digit string into groups of size digits, most
// significant first; the leading group may be shorter. The input has no
// sign and no leading zeros beyond a lone "0".
func splitGroups(digits string, size int) []int64 {
	n := (len(digits) + size - 1) / size
	groups := make([]int64, 0, n)

	head := len(digits) % size
	if head > 0 {
		groups = append(groups, groupValue(digits[:head]))
	}
	for i := head; i < len(digits); i += size {
		groups = append(groups, groupValue(digits[i:i+size]))
	}
	return groups
}

func groupValue(digits string) int64 {
	var v int64
	for i := 0; i < len(digits); i++ {
		v = v*10 + int64(digits[i]-'0')
	}
	return v
}
