package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Skipped  string  `db:"-"`
	Untagged string
	Note     *string `db:"note"`
	hidden   string  `db:"hidden"`
}

func TestStructTagValues(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "note"}, StructTagValues(row{}))
	assert.Equal(t, []string{"id", "name", "note"}, StructTagValues(&row{}))
	assert.Panics(t, func() { StructTagValues("nope") })
}

func TestStructToMap(t *testing.T) {
	r := &row{ID: "1", Name: "x", Note: StringPtr("n"), hidden: "h"}

	m := StructToMap(r)
	assert.Len(t, m, 3)
	assert.Equal(t, "1", m["id"])
	assert.Equal(t, "n", *m["note"].(*string))
}

func TestErrorWrapOrNil(t *testing.T) {
	assert.NoError(t, ErrorWrapOrNil(nil, "ctx"))

	base := errors.New("boom")
	assert.Equal(t, base, ErrorWrapOrNil(base, ""))

	err := ErrorWrapOrNil(base, "ctx")
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "ctx: boom", err.Error())
}

func TestNanoID(t *testing.T) {
	assert.Len(t, NanoID(), NanoidSize)
	assert.Len(t, NanoIDSize(8), 8)
	assert.Len(t, NanoIDSize(0), NanoidSize)
	assert.NotEqual(t, NanoID(), NanoID())
}
