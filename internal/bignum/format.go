package bignum

// AppendText appends the canonical decimal form to b: no leading
// zeros except the bare "0", a leading '-' for negative values and no
// leading '+'. It implements encoding.TextAppender.
func (i Int) AppendText(b []byte) ([]byte, error) {
	if i.sign == 0 {
		return append(b, '0'), nil
	}

	if i.sign == -1 {
		b = append(b, '-')
	}
	for k := len(i.digits) - 1; k >= 0; k-- {
		b = append(b, i.digits[k]+'0')
	}
	return b, nil
}

// String renders the canonical decimal form.
func (i Int) String() string {
	b, _ := i.AppendText(make([]byte, 0, len(i.digits)+1))
	return string(b)
}
