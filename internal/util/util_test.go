package util

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCamelToUnderscore(t *testing.T) {
	assert.Equal(t, "some_entity_name", CamelToUnderscore("SomeEntityName"))
	assert.Equal(t, "music", CamelToUnderscore("Music"))
	assert.Equal(t, "http2_proxy", CamelToUnderscore("HTTP2Proxy"))
	assert.Equal(t, "already_snake", CamelToUnderscore("already_snake"))
}

type inner struct {
	C string
	D string
}

type outer struct {
	A *inner
	B string
}

func TestAttr(t *testing.T) {
	a := &inner{C: "ac", D: "ad"}
	data := outer{A: a, B: "b"}

	assert.Equal(t, *a, Attr(data, "A", nil))
	assert.Equal(t, "ac", Attr(data, "A.C", nil))
	assert.Equal(t, "ad", Attr(data, "A.D", nil))
	assert.Nil(t, Attr(data, "A.B", nil))
	assert.Equal(t, "", Attr(data, "A.B", ""))
	assert.Equal(t, "default", Attr(data, "A.B", "default"))
	assert.Equal(t, "b", Attr(data, "B", nil))
	assert.Nil(t, Attr(data, "C", nil))
	assert.Equal(t, "", Attr(data, "C", ""))
	assert.Equal(t, "default", Attr(data, "C", "default"))
}

func TestAttr_NilPointer(t *testing.T) {
	data := outer{A: nil, B: "b"}
	assert.Equal(t, "default", Attr(data, "A.C", "default"))
	assert.Equal(t, "default", Attr(nil, "B", "default"))
}

func TestAttr_PointerData(t *testing.T) {
	data := &outer{A: &inner{C: "ac"}, B: "b"}
	assert.Equal(t, "ac", Attr(data, "A.C", nil))
	assert.Equal(t, "b", Attr(data, "B", nil))
}

func TestStringLiteral(t *testing.T) {
	assert.Equal(t, "1", StringLiteral(1))
	assert.Equal(t, "1.1", StringLiteral(1.1))
	assert.Equal(t, "hello", StringLiteral("hello"))
	assert.Equal(t, "", StringLiteral(nil))

	id := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	assert.Equal(t, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", StringLiteral(id))
}
