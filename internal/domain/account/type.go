package account

import (
	"fmt"
	"slices"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type RecordType string

const (
	RecordTypeLDAP  RecordType = "LDAP"
	RecordTypeLocal RecordType = "Локальная"
)

// RecordTypes перечисляет допустимые типы записей в порядке отображения.
var RecordTypes = []RecordType{RecordTypeLDAP, RecordTypeLocal}

func (RecordType) Schema(_ huma.Registry) *huma.Schema {
	enum := make([]any, 0, len(RecordTypes))
	for _, t := range RecordTypes {
		enum = append(enum, string(t))
	}
	return &huma.Schema{
		Type:        "string",
		Enum:        enum,
		Description: "Тип учетной записи",
		Examples:    []any{RecordTypeLocal},
	}
}

// Validate проверяет, что тип входит в RecordTypes.
func (t RecordType) Validate() error {
	if slices.Contains(RecordTypes, t) {
		return nil
	}
	return fmt.Errorf("неверный тип записи: %s", t)
}

func (t RecordType) String() string {
	return string(t)
}

// RequiresPassword сообщает, обязателен ли пароль для типа.
func (t RecordType) RequiresPassword() bool {
	return t == RecordTypeLocal
}

// DisplayName возвращает человекочитаемое название типа.
func (t RecordType) DisplayName() string {
	switch t {
	case RecordTypeLDAP:
		return "LDAP"
	case RecordTypeLocal:
		return "Локальная"
	default:
		return "Неизвестный тип"
	}
}

// ParseRecordType принимает как сохраненные значения, так и короткие
// псевдонимы командной строки (ldap, local).
func ParseRecordType(s string) (RecordType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ldap":
		return RecordTypeLDAP, nil
	case "local", "локальная":
		return RecordTypeLocal, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidRecordType, s)
}
