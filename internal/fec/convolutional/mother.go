package convolutional

// Generator polynomials for the rate-1/4 mother code, constraint length
// 5, per EN 300 392-2 8.2.3.1.1:
//
//	G1(D) = 1 + D + D^4     (decimal 19)
//	G2(D) = 1 + D^2 + D^3 + D^4  (decimal 29)
//	G3(D) = 1 + D + D^2 + D^4    (decimal 23)
//	G4(D) = 1 + D + D^3 + D^4    (decimal 27)
func encodeBit(bit bool, s state) (out [4]bool, next state) {
	var d int
	if bit {
		d = 1
	}
	d1, d2, d3, d4 := s.tap(1), s.tap(2), s.tap(3), s.tap(4)
	xb := func(vs ...bool) bool {
		v := d&1 != 0
		for _, x := range vs {
			v = v != x
		}
		return v
	}
	out[0] = xb(d1, d4)
	out[1] = xb(d2, d3, d4)
	out[2] = xb(d1, d2, d4)
	out[3] = xb(d1, d3, d4)
	return out, s.next(bit)
}

// Encode runs the mother code over in, producing 4*len(in) output bits,
// starting from the all-zero shift register.
func Encode(in []bool) []bool {
	out := make([]bool, 0, len(in)*4)
	var s state
	for _, bit := range in {
		var o [4]bool
		o, s = encodeBit(bit, s)
		out = append(out, o[0], o[1], o[2], o[3])
	}
	return out
}
