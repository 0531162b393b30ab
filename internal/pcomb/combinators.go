package pcomb

import "errors"

// Alt tries each parser against the same input and returns the first
// success. When every alternative fails, the last failure is returned. A
// fatal failure is returned immediately.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (Input, T, error) {
		err := Fail(in.Pos, ErrNoMatch)
		for _, p := range ps {
			next, v, perr := p(in)
			if perr == nil {
				return next, v, nil
			}
			err = perr
			if IsFatal(perr) {
				break
			}
		}
		return fail[T](in, err)
	}
}

// Many0 applies p until it fails. A step that consumes nothing and leaves
// the text untouched ends the repetition.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) (Input, []T, error) {
		var out []T
		cur := in
		for {
			next, v, err := p(cur)
			if err != nil {
				if IsFatal(err) {
					return fail[[]T](in, err)
				}
				break
			}
			if !advanced(cur, next) {
				break
			}
			out = append(out, v)
			cur = next
		}
		return cur, out, nil
	}
}

// Many1 is Many0 with at least one successful step.
func Many1[T any](p Parser[T]) Parser[[]T] {
	rest := Many0(p)
	return func(in Input) (Input, []T, error) {
		next, v, err := p(in)
		if err != nil {
			return fail[[]T](in, reanchor(in.Pos, err))
		}
		if !advanced(in, next) {
			return fail[[]T](in, Fail(in.Pos, ErrNoMatch))
		}
		last, vs, err := rest(next)
		if err != nil {
			return fail[[]T](in, err)
		}
		return last, append([]T{v}, vs...), nil
	}
}

// Opt returns nil instead of failing. Nothing done by a failed attempt is
// kept.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(in Input) (Input, *T, error) {
		next, v, err := p(in)
		if err != nil {
			if IsFatal(err) {
				return in, nil, err
			}
			return in, nil, nil
		}
		return next, &v, nil
	}
}

// Delimited runs open, body and close in order and keeps the body's value.
func Delimited[O, T, C any](open Parser[O], body Parser[T], closing Parser[C]) Parser[T] {
	return Map(Seq3(open, body, closing), func(t Tuple3[O, T, C]) T {
		return t.V2
	})
}

// Preceded discards the value of prefix.
func Preceded[P, T any](prefix Parser[P], p Parser[T]) Parser[T] {
	return Map(Seq2(prefix, p), func(t Tuple2[P, T]) T {
		return t.V2
	})
}

// Terminated discards the value of suffix.
func Terminated[T, S any](p Parser[T], suffix Parser[S]) Parser[T] {
	return Map(Seq2(p, suffix), func(t Tuple2[T, S]) T {
		return t.V1
	})
}

func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) (Input, U, error) {
		next, v, err := p(in)
		if err != nil {
			return fail[U](in, err)
		}
		return next, f(v), nil
	}
}

// Value replaces a successful result with v.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Validate turns a success into a failure at the starting position when
// pred rejects the value. err names the kind of failure; ErrValidation is
// used when it is nil.
func Validate[T any](p Parser[T], pred func(T) bool, err error) Parser[T] {
	return validate(p, pred, err, false)
}

// Check is Validate for constraints whose violation makes the input
// malformed: a rejected value is a fatal failure. Failures of p itself are
// returned unchanged.
func Check[T any](p Parser[T], pred func(T) bool, err error) Parser[T] {
	return validate(p, pred, err, true)
}

func validate[T any](p Parser[T], pred func(T) bool, err error, fatal bool) Parser[T] {
	if err == nil {
		err = ErrValidation
	}
	return func(in Input) (Input, T, error) {
		next, v, perr := p(in)
		if perr != nil {
			return fail[T](in, perr)
		}
		if !pred(v) {
			return fail[T](in, &Failure{Pos: in.Pos, Err: err, Fatal: fatal})
		}
		return next, v, nil
	}
}

// Update lets a successful parse produce the Config seen by the parsers
// that follow it.
func Update[T any](p Parser[T], f func(Config, T) (Config, error)) Parser[T] {
	return func(in Input) (Input, T, error) {
		next, v, err := p(in)
		if err != nil {
			return fail[T](in, err)
		}
		cfg, err := f(next.Config, v)
		if err != nil {
			return fail[T](in, asFailure(in.Pos, err))
		}
		next.Config = cfg
		return next, v, nil
	}
}

// Recognize returns the text consumed by p instead of its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Input) (Input, string, error) {
		next, _, err := p(in)
		if err != nil {
			return fail[string](in, err)
		}
		return next, next.Text[in.Pos:next.Pos], nil
	}
}

// Not succeeds, consuming nothing, when p does not match.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(in Input) (Input, struct{}, error) {
		_, _, err := p(in)
		if err == nil {
			return fail[struct{}](in, Fail(in.Pos, ErrNoMatch))
		}
		if IsFatal(err) {
			return fail[struct{}](in, err)
		}
		return in, struct{}{}, nil
	}
}

// Peek succeeds, consuming nothing, when p matches.
func Peek[T any](p Parser[T]) Parser[T] {
	return func(in Input) (Input, T, error) {
		_, v, err := p(in)
		if err != nil {
			return fail[T](in, err)
		}
		return in, v, nil
	}
}

// Cut makes every failure of p fatal. Use it once enough input has been
// seen that no other alternative could match.
func Cut[T any](p Parser[T]) Parser[T] {
	return func(in Input) (Input, T, error) {
		next, v, err := p(in)
		if err == nil {
			return next, v, nil
		}
		if IsFatal(err) {
			return fail[T](in, err)
		}
		var f *Failure
		if errors.As(err, &f) {
			return fail[T](in, Fatal(f.Pos, f.Err))
		}
		return fail[T](in, Fatal(in.Pos, err))
	}
}

// Ref defers to the parser stored in *p when called, so that productions
// may refer to each other before they are built.
func Ref[T any](p *Parser[T]) Parser[T] {
	return func(in Input) (Input, T, error) {
		return (*p)(in)
	}
}

// EOF matches the end of the text.
func EOF() Parser[struct{}] {
	return func(in Input) (Input, struct{}, error) {
		if !in.AtEnd() {
			return fail[struct{}](in, Fail(in.Pos, ErrNoMatch))
		}
		return in, struct{}{}, nil
	}
}

// Bind runs p and then the parser that f builds from p's value.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(in Input) (Input, U, error) {
		next, v, err := p(in)
		if err != nil {
			return fail[U](in, err)
		}
		last, u, err := f(v)(next)
		if err != nil {
			return fail[U](in, err)
		}
		return last, u, nil
	}
}

// Expect reports a recoverable failure of p as err, keeping the position
// where p stopped.
func Expect[T any](p Parser[T], err error) Parser[T] {
	return func(in Input) (Input, T, error) {
		next, v, perr := p(in)
		if perr == nil {
			return next, v, nil
		}
		if IsFatal(perr) {
			return fail[T](in, perr)
		}
		pos, ok := FailurePos(perr)
		if !ok {
			pos = in.Pos
		}
		return fail[T](in, Fail(pos, err))
	}
}
