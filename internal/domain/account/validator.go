package account

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validator проверяет поля учетной записи без учета остальных записей.
type Validator interface {
	ValidateFields(data Data) error
}

type FieldValidator struct {
	validate *validator.Validate
}

// NewFieldValidator создает валидатор с правилами учетных записей.
func NewFieldValidator() *FieldValidator {
	v := validator.New()
	v.RegisterStructValidation(dataRules, Data{})
	return &FieldValidator{validate: v}
}

func dataRules(sl validator.StructLevel) {
	d, ok := sl.Current().Interface().(Data)
	if !ok {
		return
	}

	if d.RecordType.RequiresPassword() && d.PasswordValue() == "" {
		sl.ReportError(d.Password, "password", "Password", "required", "")
	}
	if d.Password != nil && utf8.RuneCountInString(*d.Password) > MaxPasswordLen {
		sl.ReportError(d.Password, "password", "Password", "max", strconv.Itoa(MaxPasswordLen))
	}
	if d.RecordType != "" && d.RecordType.Validate() != nil {
		sl.ReportError(d.RecordType, "recordType", "RecordType", "oneof", "")
	}
	if tagsLen(d.Tags) > MaxTagsLen {
		sl.ReportError(d.Tags, "tags", "Tags", "max", strconv.Itoa(MaxTagsLen))
	}
}

// ValidateFields reports required fields first, then an unknown record
// type, then length violations.
func (v *FieldValidator) ValidateFields(d Data) error {
	err := v.validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate account data: %w", err)
	}

	var invalidType, tooLong bool
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return NewDomainError(ErrRequiredFields)
		case "oneof":
			invalidType = true
		case "max":
			tooLong = true
		}
	}

	switch {
	case invalidType:
		return NewDomainError(ErrInvalidRecordType)
	case tooLong:
		return NewDomainError(ErrFieldTooLong)
	}
	return NewDomainError(ErrRequiredFields)
}
