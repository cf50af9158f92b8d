package labelset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/advent/labelset"
)

func TestSet_Create(t *testing.T) {
	in := labelset.NewInterner()
	s := in.Empty()
	assert.Equal(t, "0", s.String())
	assert.Equal(t, "", fmt.Sprint(s))

	r := s.Add("foo")
	assert.Equal(t, "1", r.String())
	assert.Equal(t, "foo", fmt.Sprint(r))
	assert.Equal(t, "1", r.Add("foo").String())
	assert.Equal(t, "foo", fmt.Sprintf("%v", r.Add("foo")))
	assert.False(t, r.Has("bar"))
	assert.True(t, r.Has("foo"))

	baz := r.Add("baz")
	assert.Equal(t, "foo,baz", fmt.Sprint(baz))
	assert.Equal(t, "3", fmt.Sprintf("%d", baz))
	assert.Equal(t, 2, baz.Size())

	dbaz := baz.Delete("foo")
	assert.Equal(t, 1, dbaz.Size())
	assert.Equal(t, "baz", fmt.Sprint(dbaz))
	assert.Equal(t, 2, baz.Size(), "Delete must not modify its receiver")
}

func TestSet_Has_DoesNotIntern(t *testing.T) {
	in := labelset.NewInterner()
	s := in.Of("a")
	assert.False(t, s.Has("b"))
	assert.Equal(t, 1, in.Len())
	assert.Equal(t, 1, s.Delete("zzz").Size())
}

func TestSet_Disjoint(t *testing.T) {
	in := labelset.NewInterner()
	ab := in.Of("a", "b")
	cd := in.Of("c", "d")
	bc := in.Of("b", "c")
	assert.True(t, ab.Disjoint(cd))
	assert.False(t, ab.Disjoint(bc))
	assert.True(t, ab.Disjoint(in.Empty()))
}

func TestSet_UnionEqualKey(t *testing.T) {
	in := labelset.NewInterner()
	u := in.Of("a").Union(in.Of("c"))
	assert.True(t, u.Equal(in.Of("c", "a")))
	assert.Equal(t, in.Of("a", "c").Key(), u.Key())
	assert.NotEqual(t, in.Of("a").Key(), u.Key())

	// keys ignore how far the underlying set once grew
	grown := in.Of("a", "x", "y", "z").Delete("x").Delete("y").Delete("z")
	assert.Equal(t, in.Of("a").Key(), grown.Key())
}

func TestSet_Labels(t *testing.T) {
	in := labelset.NewInterner()
	in.Bit("q")
	s := in.Of("z", "q", "m")
	assert.Equal(t, []string{"q", "z", "m"}, s.Labels().ToSlice())
	assert.True(t, in.Empty().Labels().IsEmpty())

	name, ok := in.Name(1)
	assert.True(t, ok)
	assert.Equal(t, "z", name)
	_, ok = in.Name(9)
	assert.False(t, ok)
}
