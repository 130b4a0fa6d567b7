package reflects_test

import (
	"testing"

	"github.com/adamluzsi/testcase"

	"github.com/adamluzsi/fluent/reflects"
)

func TestIsNil(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	v := testcase.Var[any]{ID: `value`}
	subject := func(t *testcase.T) bool {
		return reflects.IsNil(v.Get(t))
	}

	s.When(`the value is an untyped nil`, func(s *testcase.Spec) {
		v.Let(s, func(t *testcase.T) any { return nil })

		s.Then(`it reports true`, func(t *testcase.T) {
			t.Must.True(subject(t))
		})
	})

	s.When(`the value is a nil pointer`, func(s *testcase.Spec) {
		v.Let(s, func(t *testcase.T) any {
			var ptr *int
			return ptr
		})

		s.Then(`it reports true`, func(t *testcase.T) {
			t.Must.True(subject(t))
		})
	})

	s.When(`the value is a populated pointer`, func(s *testcase.Spec) {
		v.Let(s, func(t *testcase.T) any {
			n := t.Random.Int()
			return &n
		})

		s.Then(`it reports false`, func(t *testcase.T) {
			t.Must.False(subject(t))
		})
	})

	s.When(`the value is a nil slice`, func(s *testcase.Spec) {
		v.Let(s, func(t *testcase.T) any {
			var vs []string
			return vs
		})

		s.Then(`it reports true`, func(t *testcase.T) {
			t.Must.True(subject(t))
		})
	})

	s.When(`the value is an empty but allocated map`, func(s *testcase.Spec) {
		v.Let(s, func(t *testcase.T) any {
			return map[string]int{}
		})

		s.Then(`it reports false`, func(t *testcase.T) {
			t.Must.False(subject(t))
		})
	})

	s.When(`the value is a nil function`, func(s *testcase.Spec) {
		v.Let(s, func(t *testcase.T) any {
			var fn func()
			return fn
		})

		s.Then(`it reports true`, func(t *testcase.T) {
			t.Must.True(subject(t))
		})
	})

	s.When(`the value is a nil error held in an interface`, func(s *testcase.Spec) {
		v.Let(s, func(t *testcase.T) any {
			var err error
			return err
		})

		s.Then(`it reports true`, func(t *testcase.T) {
			t.Must.True(subject(t))
		})
	})

	s.When(`the value has a non nillable kind`, func(s *testcase.Spec) {
		v.Let(s, func(t *testcase.T) any { return t.Random.Int() })

		s.Then(`it reports false`, func(t *testcase.T) {
			t.Must.False(subject(t))
		})
	})
}
