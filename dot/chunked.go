package dot

// Chunked sums element-wise products in decreasing chunk widths of 16, 8, 4,
// 2 and 1 lanes. Each chunk is reduced pairwise, the way a SIMD horizontal
// sum would, so the result differs from Scalar only by rounding.
func Chunked(x, y []float32) (sum float32) {
	y = y[:len(x)]
	var i int
	for ; i+16 <= len(x); i += 16 {
		sum += lanes16((*[16]float32)(x[i:i+16]), (*[16]float32)(y[i:i+16]))
	}
	for ; i+8 <= len(x); i += 8 {
		sum += lanes8((*[8]float32)(x[i:i+8]), (*[8]float32)(y[i:i+8]))
	}
	for ; i+4 <= len(x); i += 4 {
		sum += lanes4((*[4]float32)(x[i:i+4]), (*[4]float32)(y[i:i+4]))
	}
	for ; i+2 <= len(x); i += 2 {
		sum += x[i]*y[i] + x[i+1]*y[i+1]
	}
	for ; i < len(x); i++ {
		sum += x[i] * y[i]
	}
	return
}

func lanes4(x, y *[4]float32) float32 {
	return (x[0]*y[0] + x[1]*y[1]) + (x[2]*y[2] + x[3]*y[3])
}

func lanes8(x, y *[8]float32) float32 {
	return lanes4((*[4]float32)(x[0:4]), (*[4]float32)(y[0:4])) +
		lanes4((*[4]float32)(x[4:8]), (*[4]float32)(y[4:8]))
}

func lanes16(x, y *[16]float32) float32 {
	return lanes8((*[8]float32)(x[0:8]), (*[8]float32)(y[0:8])) +
		lanes8((*[8]float32)(x[8:16]), (*[8]float32)(y[8:16]))
}
