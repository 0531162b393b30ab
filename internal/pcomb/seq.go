package pcomb

// Sequences run their parsers in order and stop at the first failure. The
// values are collected into a TupleN whose fields follow parser order.

type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
	V9 I
}

type Tuple10[A, B, C, D, E, F, G, H, I, J any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
	V9 I
	V10 J
}

func Seq2[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple2[A, B]] {
	return func(in Input) (Input, Tuple2[A, B], error) {
		var t Tuple2[A, B]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple2[A, B]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple2[A, B]](in, err)
		}
		return cur, t, nil
	}
}

func Seq3[A, B, C any](p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[Tuple3[A, B, C]] {
	return func(in Input) (Input, Tuple3[A, B, C], error) {
		var t Tuple3[A, B, C]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple3[A, B, C]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple3[A, B, C]](in, err)
		}
		if cur, t.V3, err = p3(cur); err != nil {
			return fail[Tuple3[A, B, C]](in, err)
		}
		return cur, t, nil
	}
}

func Seq4[A, B, C, D any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return func(in Input) (Input, Tuple4[A, B, C, D], error) {
		var t Tuple4[A, B, C, D]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple4[A, B, C, D]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple4[A, B, C, D]](in, err)
		}
		if cur, t.V3, err = p3(cur); err != nil {
			return fail[Tuple4[A, B, C, D]](in, err)
		}
		if cur, t.V4, err = p4(cur); err != nil {
			return fail[Tuple4[A, B, C, D]](in, err)
		}
		return cur, t, nil
	}
}

func Seq5[A, B, C, D, E any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D], p5 Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	return func(in Input) (Input, Tuple5[A, B, C, D, E], error) {
		var t Tuple5[A, B, C, D, E]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple5[A, B, C, D, E]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple5[A, B, C, D, E]](in, err)
		}
		if cur, t.V3, err = p3(cur); err != nil {
			return fail[Tuple5[A, B, C, D, E]](in, err)
		}
		if cur, t.V4, err = p4(cur); err != nil {
			return fail[Tuple5[A, B, C, D, E]](in, err)
		}
		if cur, t.V5, err = p5(cur); err != nil {
			return fail[Tuple5[A, B, C, D, E]](in, err)
		}
		return cur, t, nil
	}
}

func Seq6[A, B, C, D, E, F any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D], p5 Parser[E], p6 Parser[F]) Parser[Tuple6[A, B, C, D, E, F]] {
	return func(in Input) (Input, Tuple6[A, B, C, D, E, F], error) {
		var t Tuple6[A, B, C, D, E, F]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple6[A, B, C, D, E, F]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple6[A, B, C, D, E, F]](in, err)
		}
		if cur, t.V3, err = p3(cur); err != nil {
			return fail[Tuple6[A, B, C, D, E, F]](in, err)
		}
		if cur, t.V4, err = p4(cur); err != nil {
			return fail[Tuple6[A, B, C, D, E, F]](in, err)
		}
		if cur, t.V5, err = p5(cur); err != nil {
			return fail[Tuple6[A, B, C, D, E, F]](in, err)
		}
		if cur, t.V6, err = p6(cur); err != nil {
			return fail[Tuple6[A, B, C, D, E, F]](in, err)
		}
		return cur, t, nil
	}
}

func Seq7[A, B, C, D, E, F, G any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D], p5 Parser[E], p6 Parser[F], p7 Parser[G]) Parser[Tuple7[A, B, C, D, E, F, G]] {
	return func(in Input) (Input, Tuple7[A, B, C, D, E, F, G], error) {
		var t Tuple7[A, B, C, D, E, F, G]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple7[A, B, C, D, E, F, G]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple7[A, B, C, D, E, F, G]](in, err)
		}
		if cur, t.V3, err = p3(cur); err != nil {
			return fail[Tuple7[A, B, C, D, E, F, G]](in, err)
		}
		if cur, t.V4, err = p4(cur); err != nil {
			return fail[Tuple7[A, B, C, D, E, F, G]](in, err)
		}
		if cur, t.V5, err = p5(cur); err != nil {
			return fail[Tuple7[A, B, C, D, E, F, G]](in, err)
		}
		if cur, t.V6, err = p6(cur); err != nil {
			return fail[Tuple7[A, B, C, D, E, F, G]](in, err)
		}
		if cur, t.V7, err = p7(cur); err != nil {
			return fail[Tuple7[A, B, C, D, E, F, G]](in, err)
		}
		return cur, t, nil
	}
}

func Seq8[A, B, C, D, E, F, G, H any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D], p5 Parser[E], p6 Parser[F], p7 Parser[G], p8 Parser[H]) Parser[Tuple8[A, B, C, D, E, F, G, H]] {
	return func(in Input) (Input, Tuple8[A, B, C, D, E, F, G, H], error) {
		var t Tuple8[A, B, C, D, E, F, G, H]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in, err)
		}
		if cur, t.V3, err = p3(cur); err != nil {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in, err)
		}
		if cur, t.V4, err = p4(cur); err != nil {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in, err)
		}
		if cur, t.V5, err = p5(cur); err != nil {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in, err)
		}
		if cur, t.V6, err = p6(cur); err != nil {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in, err)
		}
		if cur, t.V7, err = p7(cur); err != nil {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in, err)
		}
		if cur, t.V8, err = p8(cur); err != nil {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in, err)
		}
		return cur, t, nil
	}
}

func Seq9[A, B, C, D, E, F, G, H, I any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D], p5 Parser[E], p6 Parser[F], p7 Parser[G], p8 Parser[H], p9 Parser[I]) Parser[Tuple9[A, B, C, D, E, F, G, H, I]] {
	return func(in Input) (Input, Tuple9[A, B, C, D, E, F, G, H, I], error) {
		var t Tuple9[A, B, C, D, E, F, G, H, I]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		if cur, t.V3, err = p3(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		if cur, t.V4, err = p4(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		if cur, t.V5, err = p5(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		if cur, t.V6, err = p6(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		if cur, t.V7, err = p7(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		if cur, t.V8, err = p8(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		if cur, t.V9, err = p9(cur); err != nil {
			return fail[Tuple9[A, B, C, D, E, F, G, H, I]](in, err)
		}
		return cur, t, nil
	}
}

func Seq10[A, B, C, D, E, F, G, H, I, J any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D], p5 Parser[E], p6 Parser[F], p7 Parser[G], p8 Parser[H], p9 Parser[I], p10 Parser[J]) Parser[Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	return func(in Input) (Input, Tuple10[A, B, C, D, E, F, G, H, I, J], error) {
		var t Tuple10[A, B, C, D, E, F, G, H, I, J]
		var err error
		cur := in
		if cur, t.V1, err = p1(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V2, err = p2(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V3, err = p3(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V4, err = p4(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V5, err = p5(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V6, err = p6(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V7, err = p7(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V8, err = p8(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V9, err = p9(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		if cur, t.V10, err = p10(cur); err != nil {
			return fail[Tuple10[A, B, C, D, E, F, G, H, I, J]](in, err)
		}
		return cur, t, nil
	}
}
