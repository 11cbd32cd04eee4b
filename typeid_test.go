package dyncast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeID_Equality(t *testing.T) {
	assert.Equal(t, TypeFor[reading](), TypeFor[reading]())
	assert.NotEqual(t, TypeFor[reading](), TypeFor[counter]())
	assert.NotEqual(t, TypeFor[reading](), TypeFor[*reading](), "value and pointer types have distinct identities")
	assert.NotEqual(t, TypeFor[int](), TypeFor[int64]())
}

func TestTypeID_OfDynamicType(t *testing.T) {
	var ref any = reading{Celsius: 5}

	assert.Equal(t, TypeFor[reading](), TypeOf(ref))
	assert.NotEqual(t, TypeFor[label](), TypeOf(ref))
}

func TestTypeID_NilRef(t *testing.T) {
	id := TypeOf(nil)

	assert.False(t, id.Valid())
	assert.Equal(t, "<nil>", id.Name())
	assert.NotEqual(t, TypeFor[int](), id, "the invalid TypeID equals no real type")
}

func TestTypeID_ZeroValueInvalid(t *testing.T) {
	var id TypeID
	assert.False(t, id.Valid())
	assert.True(t, TypeFor[reading]().Valid())
}

func TestName_SameTypeSameName(t *testing.T) {
	a := Name(reading{Celsius: 1})
	b := Name(reading{Celsius: 2})

	assert.Equal(t, a, b, "two values of the same concrete type share a name")
}

func TestName_DistinctTypesDistinctNames(t *testing.T) {
	names := []string{
		Name(reading{}),
		Name(&reading{}),
		Name(counter{}),
		Name(label("x")),
		Name(int(0)),
	}

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "name %q reported for two distinct types", n)
		seen[n] = true
	}
}

func TestNameFor_MatchesName(t *testing.T) {
	assert.Equal(t, Name(reading{}), NameFor[reading]())
	assert.Equal(t, Name(&counter{}), NameFor[*counter]())
	assert.Equal(t, "int", NameFor[int]())
}
