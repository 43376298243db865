// file: internals/helpers/validator_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email     string       `validate:"required,email"`
	FullName  string       `validate:"required,min=2"`
	LineItems []sampleItem `validate:"dive"`
}

type sampleItem struct {
	Description string `validate:"required"`
}

func TestValidateStructOK(t *testing.T) {
	errs := ValidateStruct(&sampleForm{
		Email:    "admin@sekolah.sch.id",
		FullName: "Admin",
	})
	assert.Nil(t, errs)
}

func TestValidateStructCollectsAll(t *testing.T) {
	errs := ValidateStruct(&sampleForm{Email: "bukan-email"})
	require.NotNil(t, errs)
	// dua field salah → dua key, bukan fail-fast di yang pertama
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "full_name")
}

func TestValidateStructNestedSliceKey(t *testing.T) {
	errs := ValidateStruct(&sampleForm{
		Email:     "admin@sekolah.sch.id",
		FullName:  "Admin",
		LineItems: []sampleItem{{Description: "ok"}, {Description: ""}},
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "line_items[1].description")
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "full_name", snakeCase("FullName"))
	assert.Equal(t, "line_items[0]", snakeCase("LineItems[0]"))
	assert.Equal(t, "nis", snakeCase("NIS"))
}
