package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostline/shared"
	"hostline/shared/constant"
)

type updateApartment struct {
	PersonName   string `db:"person_name"`
	NumberOfBeds int    `db:"number_of_beds"`
	Ignored      string
}

func TestTransformFields(t *testing.T) {
	fields := shared.TransformFields(updateApartment{
		PersonName:   "Chaim",
		NumberOfBeds: 3,
		Ignored:      "no db tag",
	})

	assert.Equal(t, "Chaim", fields["person_name"])
	assert.Equal(t, 3, fields["number_of_beds"])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.Len(t, fields, 3)
}

func TestTransformFieldsSkipsZeroValues(t *testing.T) {
	fields := shared.TransformFields(updateApartment{PersonName: "Rivka"})

	assert.Equal(t, "Rivka", fields["person_name"])
	assert.NotContains(t, fields, "number_of_beds")
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	value := shared.ConvertStringToBool("true")
	assert.NotNil(t, value)
	assert.True(t, *value)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "weeks")
	where, args := group.GetWhereClause()

	assert.Equal(t, "(weeks.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "audio:prompt:welcome", shared.BuildCacheKey("audio", "prompt", "welcome"))
}
