// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// GF(256) with the primitive polynomial x⁸+x⁴+x³+x²+1 and generator 2.
// The tables are in tables.go.

// logZero is the logarithm of 0 in logTab.
const logZero = 255

// exp returns α**e.
func exp(e int) byte { return expTab[e%255] }

// mul returns the product of x and y.
func mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return exp(int(logTab[x]) + int(logTab[y]))
}

// A Generator is a Reed-Solomon generator polynomial
// (x-α⁰)(x-α¹)...(x-αⁿ⁻¹) of degree n.  Element k is the logarithm
// of the coefficient of xᵏ.  The coefficient of xⁿ is 1 and is not
// stored.
type Generator []byte

// NewGenerator returns the generator polynomial for n check bytes.
func NewGenerator(n int) Generator {
	g := make(Generator, n)
	// g[i] for i > 0 starts as the implicit leading 1
	// of the polynomial it will become the leading term of.
	for i := range g {
		g[i] = 1
	}
	for i := 1; i < n; i++ {
		a := exp(i)
		for j := i; j > 0; j-- {
			g[j] = g[j-1] ^ mul(g[j], a)
		}
		g[0] = mul(g[0], a)
	}
	for i, c := range g {
		g[i] = logTab[c]
	}
	return g
}

// ECC writes to check the Reed-Solomon check bytes for data,
// the remainder of data·xⁿ divided by g.  The length of check
// must be len(g).
func (g Generator) ECC(data, check []byte) {
	n := len(g)
	if len(check) != n {
		panic("qr: invalid check byte length")
	}
	clear(check)
	for _, d := range data {
		f := logTab[d^check[0]]
		copy(check, check[1:])
		if f == logZero {
			check[n-1] = 0
			continue
		}
		for j := 0; j < n-1; j++ {
			check[j] ^= exp(int(f) + int(g[n-1-j]))
		}
		check[n-1] = exp(int(f) + int(g[0]))
	}
}
