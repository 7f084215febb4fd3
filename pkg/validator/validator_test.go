package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/pkg/validator"
)

func TestRegistrationNo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: "123AB45C67"},
		{name: "valid with digit wildcard", input: "123ab45967"},
		{name: "only two leading digits", input: "12AB345C67", wantErr: validator.MsgRegNoFormat},
		{name: "too short", input: "123AB45C6", wantErr: validator.MsgRegNoFormat},
		{name: "too long", input: "123AB45C678", wantErr: validator.MsgRegNoFormat},
		{name: "digits where letters expected", input: "1234545C67", wantErr: validator.MsgRegNoFormat},
		{name: "empty", input: "", wantErr: validator.MsgRegNoRequired},
		{name: "blank", input: "   ", wantErr: validator.MsgRegNoRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.RegistrationNo(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestPhoneNo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: "9876543210"},
		{name: "nine digits", input: "987654321", wantErr: validator.MsgPhoneFormat},
		{name: "eleven digits", input: "98765432100", wantErr: validator.MsgPhoneFormat},
		{name: "letters", input: "98765x3210", wantErr: validator.MsgPhoneFormat},
		{name: "empty", input: "", wantErr: validator.MsgPhoneRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.PhoneNo(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestEmail(t *testing.T) {
	assert.NoError(t, validator.Email("a@x.com"))
	assert.NoError(t, validator.Email("first.last@dept.college.edu"))

	for _, bad := range []string{"", "   "} {
		err := validator.Email(bad)
		require.Error(t, err)
		assert.Equal(t, validator.MsgEmailRequired, err.Error())
	}
	for _, bad := range []string{"ax.com", "a@xcom", "a @x.com", "@x.com"} {
		err := validator.Email(bad)
		require.Error(t, err, "input %q", bad)
		assert.Equal(t, validator.MsgEmailFormat, err.Error())
	}
}

func TestName(t *testing.T) {
	assert.NoError(t, validator.Name("A"))
	assert.NoError(t, validator.Name("Mary-Jane O'Neil"))
	assert.NoError(t, validator.Name("  Ravi Kumar  "))

	err := validator.Name("")
	require.Error(t, err)
	assert.Equal(t, validator.MsgNameRequired, err.Error())

	for _, bad := range []string{"R2D2", "x!", "傑"} {
		err := validator.Name(bad)
		require.Error(t, err, "input %q", bad)
		assert.Equal(t, validator.MsgNameFormat, err.Error())
	}
}

func TestYear(t *testing.T) {
	for _, ok := range []string{"1", "2", "3", "4", "1st", "2nd", "3rd", "4th"} {
		assert.NoError(t, validator.Year(ok), "input %q", ok)
	}
	err := validator.Year("")
	require.Error(t, err)
	assert.Equal(t, validator.MsgYearRequired, err.Error())
	for _, bad := range []string{"5", "0", "second", "2ndd"} {
		err := validator.Year(bad)
		require.Error(t, err, "input %q", bad)
		assert.Equal(t, validator.MsgYearFormat, err.Error())
	}
}

func TestSection(t *testing.T) {
	assert.NoError(t, validator.Section("A"))
	assert.NoError(t, validator.Section("Men"))
	err := validator.Section("  ")
	require.Error(t, err)
	assert.Equal(t, validator.MsgSectionReq, err.Error())
}

func TestTeamName(t *testing.T) {
	assert.NoError(t, validator.TeamName("T1"))
	assert.NoError(t, validator.TeamName("Null Pointers"))

	err := validator.TeamName("")
	require.Error(t, err)
	assert.Equal(t, validator.MsgTeamNameReq, err.Error())

	err = validator.TeamName("X")
	require.Error(t, err)
	assert.Equal(t, validator.MsgTeamNameFormat, err.Error())
}

func TestStructValidationTags(t *testing.T) {
	type form struct {
		RegNo string `validate:"required,regno"`
		Phone string `validate:"required,phone10"`
		Year  string `validate:"required,year"`
	}

	assert.NoError(t, validator.Validate(t.Context(), form{RegNo: "123AB45C67", Phone: "9876543210", Year: "2nd"}))
	assert.Error(t, validator.Validate(t.Context(), form{RegNo: "12AB345C67", Phone: "9876543210", Year: "2nd"}))
	assert.Error(t, validator.Validate(t.Context(), form{RegNo: "123AB45C67", Phone: "987", Year: "2nd"}))
	assert.Error(t, validator.Validate(t.Context(), form{RegNo: "123AB45C67", Phone: "9876543210", Year: "9th"}))
}
