// Package cursorkitcontract provides reusable test suites
// to verify that a cursor implementation honours the protocol of the cursorkit package.
//
// Each contract takes a factory function.
// The factory must produce the same finite, non-empty stream of elements on every call.
package cursorkitcontract

import (
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/cursorkit"
)

type Cursor[V any] func(tb testing.TB) cursorkit.Cursor[V]

func (c Cursor[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a cursor", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) cursorkit.Cursor[V] {
			return c(t)
		})

		s.Then("no element is lent out before the first advance", func(t *testcase.T) {
			_, ok := subject.Get(t).Value()
			t.Must.False(ok)
		})

		s.Then("values can be collected from the cursor", func(t *testcase.T) {
			t.Must.NotEmpty(cursorkit.Collect[V](subject.Get(t)))
		})

		s.Then("reading the current element is repeatable and free of side effects", func(t *testcase.T) {
			sub := subject.Get(t)
			for {
				sub.Advance()
				v1, ok1 := sub.Value()
				v2, ok2 := sub.Value()
				t.Must.Equal(ok1, ok2)
				t.Must.Equal(v1, v2)
				if !ok1 {
					break
				}
			}
		})

		s.Then("after the last element the cursor reports absence", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.NotEmpty(cursorkit.Collect[V](sub))
			_, ok := sub.Value()
			t.Must.False(ok)
		})

		s.Then("counting consumes the whole stream", func(t *testcase.T) {
			expected := len(cursorkit.Collect[V](c(t)))
			sub := subject.Get(t)
			t.Must.Equal(expected, cursorkit.Count[V](sub))
			_, ok := sub.Value()
			t.Must.False(ok)
		})

		s.Then("the size hint brackets the number of remaining elements", func(t *testcase.T) {
			sub := subject.Get(t)
			lower, upper, bounded := cursorkit.SizeHint[V](sub)
			n := len(cursorkit.Collect[V](sub))
			t.Must.True(lower <= n)
			if bounded {
				t.Must.True(n <= upper)
			}
		})

		s.Then("exhaustion is reported once the stream is over", func(t *testcase.T) {
			sub := subject.Get(t)
			_ = cursorkit.Collect[V](sub)
			t.Must.True(cursorkit.Exhausted[V](sub))
		})
	})
}

func (c Cursor[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Cursor[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}

type DoubleEndedCursor[V any] func(tb testing.TB) cursorkit.DoubleEndedCursor[V]

func (c DoubleEndedCursor[V]) Spec(s *testcase.Spec) {
	Cursor[V](func(tb testing.TB) cursorkit.Cursor[V] { return c(tb) }).Spec(s)
	specDoubleEnded[V](s, c)
}

func (c DoubleEndedCursor[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c DoubleEndedCursor[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}

func specDoubleEnded[V any](s *testcase.Spec, mk func(tb testing.TB) cursorkit.DoubleEndedCursor[V]) {
	s.Describe("it behaves like a double ended cursor", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) cursorkit.DoubleEndedCursor[V] {
			return mk(t)
		})

		expected := testcase.Let(s, func(t *testcase.T) []V {
			return cursorkit.Collect[V](mk(t))
		})

		s.Then("backward consumption yields the same elements in reverse order", func(t *testcase.T) {
			sub := subject.Get(t)
			var vs []V
			for v, ok := cursorkit.NextBack[V](sub); ok; v, ok = cursorkit.NextBack[V](sub) {
				vs = append(vs, v)
			}
			exp := expected.Get(t)
			t.Must.Equal(len(exp), len(vs))
			for i, v := range vs {
				t.Must.Equal(exp[len(exp)-1-i], v)
			}
		})

		s.Then("mixed consumption from both ends yields every element exactly once", func(t *testcase.T) {
			sub := subject.Get(t)
			exp := expected.Get(t)
			var fronts, backs []V
			for i := 0; i < len(exp); i++ {
				if t.Random.Bool() {
					v, ok := cursorkit.Next[V](sub)
					t.Must.True(ok)
					fronts = append(fronts, v)
				} else {
					v, ok := cursorkit.NextBack[V](sub)
					t.Must.True(ok)
					backs = append(backs, v)
				}
			}
			for i := len(backs) - 1; 0 <= i; i-- {
				fronts = append(fronts, backs[i])
			}
			t.Must.Equal(exp, fronts)
		})

		s.Then("once the two ends meet, both directions report absence", func(t *testcase.T) {
			sub := subject.Get(t)
			for i := 0; i < len(expected.Get(t)); i++ {
				if t.Random.Bool() {
					sub.Advance()
				} else {
					sub.AdvanceBack()
				}
			}
			_, ok := cursorkit.Next[V](sub)
			t.Must.False(ok)
			_, ok = cursorkit.NextBack[V](sub)
			t.Must.False(ok)
		})
	})
}

type MutCursor[V any] func(tb testing.TB) cursorkit.MutCursor[V]

func (c MutCursor[V]) Spec(s *testcase.Spec) {
	Cursor[V](func(tb testing.TB) cursorkit.Cursor[V] { return c(tb) }).Spec(s)
	specMut[V](s, c)
}

func (c MutCursor[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c MutCursor[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}

func specMut[V any](s *testcase.Spec, mk func(tb testing.TB) cursorkit.MutCursor[V]) {
	s.Describe("it behaves like a mutable cursor", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) cursorkit.MutCursor[V] {
			return mk(t)
		})

		s.Then("no element is lent out for mutation before the first advance", func(t *testcase.T) {
			ptr, ok := subject.Get(t).ValueMut()
			t.Must.False(ok)
			t.Must.Nil(ptr)
		})

		s.Then("the mutable view and the read view agree on each element", func(t *testcase.T) {
			sub := subject.Get(t)
			for {
				sub.Advance()
				ptr, mok := sub.ValueMut()
				v, ok := sub.Value()
				t.Must.Equal(ok, mok)
				if !ok {
					t.Must.Nil(ptr)
					return
				}
				t.Must.NotNil(ptr)
				t.Must.Equal(v, *ptr)
			}
		})

		s.Then("the same slot is lent until the next advance", func(t *testcase.T) {
			sub := subject.Get(t)
			for {
				sub.Advance()
				p1, ok := sub.ValueMut()
				if !ok {
					return
				}
				p2, ok := sub.ValueMut()
				t.Must.True(ok)
				t.Must.True(p1 == p2)
			}
		})
	})
}

type DoubleEndedMutCursor[V any] func(tb testing.TB) cursorkit.DoubleEndedMutCursor[V]

func (c DoubleEndedMutCursor[V]) Spec(s *testcase.Spec) {
	Cursor[V](func(tb testing.TB) cursorkit.Cursor[V] { return c(tb) }).Spec(s)
	specDoubleEnded[V](s, func(tb testing.TB) cursorkit.DoubleEndedCursor[V] { return c(tb) })
	specMut[V](s, func(tb testing.TB) cursorkit.MutCursor[V] { return c(tb) })

	s.Describe("it behaves like a double ended mutable cursor", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) cursorkit.DoubleEndedMutCursor[V] {
			return c(t)
		})

		s.Then("backward consumption lends out the element it stands on", func(t *testcase.T) {
			sub := subject.Get(t)
			for {
				sub.AdvanceBack()
				ptr, mok := sub.ValueMut()
				v, ok := sub.Value()
				t.Must.Equal(ok, mok)
				if !ok {
					t.Must.Nil(ptr)
					return
				}
				t.Must.NotNil(ptr)
				t.Must.Equal(v, *ptr)
			}
		})
	})
}

func (c DoubleEndedMutCursor[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c DoubleEndedMutCursor[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
