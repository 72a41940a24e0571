package validation_test

import (
	"encoding/json"
	"testing"

	"go-jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string   `json:"username" binding:"required,min=3,valid_username"`
	FullName string   `json:"fullName" binding:"required,no_blank,valid_name,no_emoji"`
	Tags     []string `json:"tags" binding:"dive,no_blank"`
	Age      int      `json:"age" binding:"gte=0"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	v := validation.New()

	res := validation.Struct(v, &signup{Username: "ok_name", FullName: "Zeynep Kaya", Tags: []string{"go"}})
	assert.True(t, res.Valid)

	res = validation.Struct(v, &signup{Username: "no spaces", FullName: "   ", Tags: []string{"go", " "}, Age: -1})
	require.False(t, res.Valid)

	got := map[string]string{}
	for _, e := range res.Errors {
		got[e.Field] = e.Message
	}
	assert.Equal(t, "may only contain letters, digits and . _ -", got["username"])
	assert.Equal(t, "must not be blank", got["fullName"])
	assert.Equal(t, "must not be blank", got["tags[1]"])
	assert.Equal(t, "must be greater than or equal to 0", got["age"])
}

func TestCustomValidators(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Var("Ayşe Yılmaz-Öztürk", "valid_name"))
	assert.Error(t, v.Var("R2-D2", "valid_name"))
	assert.NoError(t, v.Var("dev.ops_1", "valid_username"))
	assert.Error(t, v.Var("dev ops", "valid_username"))
	assert.Error(t, v.Var("Hello 🚀", "no_emoji"))
	assert.NoError(t, v.Var("Hello", "no_emoji"))
}

func TestFormatDecodeErrors(t *testing.T) {
	var target struct {
		JobID int64 `json:"jobId"`
	}

	err := json.Unmarshal([]byte(`{"jobId":"abc"}`), &target)
	fields := validation.FormatValidationErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "jobId", fields[0].Field)
	assert.Equal(t, "must be of type number", fields[0].Message)

	err = json.Unmarshal([]byte(`{"jobId":`), &target)
	fields = validation.FormatValidationErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Field)
}
