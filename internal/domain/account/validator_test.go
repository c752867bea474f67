package account

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValidator_ValidateFields(t *testing.T) {
	validator := NewFieldValidator()

	tests := []struct {
		name    string
		data    Data
		wantErr error
	}{
		{
			name: "valid local",
			data: localData("user", "secret", "a"),
		},
		{
			name: "valid ldap without password",
			data: ldapData("user"),
		},
		{
			name:    "empty login",
			data:    ldapData(""),
			wantErr: ErrRequiredFields,
		},
		{
			name:    "local without password",
			data:    Data{Login: "user", RecordType: RecordTypeLocal},
			wantErr: ErrRequiredFields,
		},
		{
			name:    "unknown record type",
			data:    Data{Login: "user", RecordType: "Kerberos"},
			wantErr: ErrInvalidRecordType,
		},
		{
			name:    "login too long",
			data:    ldapData(strings.Repeat("л", MaxLoginLen+1)),
			wantErr: ErrFieldTooLong,
		},
		{
			name: "login at limit",
			data: ldapData(strings.Repeat("л", MaxLoginLen)),
		},
		{
			name:    "password too long",
			data:    localData("user", strings.Repeat("x", MaxPasswordLen+1)),
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "tags too long",
			data:    localData("user", "p", strings.Repeat("t", MaxTagsLen+1)),
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "required wins over length",
			data:    Data{Login: "", Password: StringPtr(strings.Repeat("x", 200)), RecordType: RecordTypeLocal},
			wantErr: ErrRequiredFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateFields(tt.data)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
