package account

import "errors"

var (
	ErrRequiredFields    = errors.New("required fields are missing")
	ErrLoginExists       = errors.New("login already exists")
	ErrNotFound          = errors.New("account not found")
	ErrInvalidRecordType = errors.New("invalid record type")
	ErrFieldTooLong      = errors.New("field is too long")
)

const (
	CodeRequiredFields    = "required_fields"
	CodeLoginExists       = "login_exists"
	CodeNotFound          = "not_found"
	CodeInvalidRecordType = "invalid_record_type"
	CodeFieldTooLong      = "field_too_long"
)

// DomainError несет сообщение для пользователя поверх сигнальной ошибки.
type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

var messages = map[error]struct {
	message string
	code    string
}{
	ErrRequiredFields:    {"Заполнены не все обязательные поля", CodeRequiredFields},
	ErrLoginExists:       {"Такой логин уже существует", CodeLoginExists},
	ErrNotFound:          {"Такая учетная запись не найдена", CodeNotFound},
	ErrInvalidRecordType: {"Неизвестный тип учетной записи", CodeInvalidRecordType},
	ErrFieldTooLong:      {"Превышена допустимая длина поля", CodeFieldTooLong},
}

// NewDomainError оборачивает сигнальную ошибку текстом для пользователя.
func NewDomainError(err error) *DomainError {
	m, ok := messages[err]
	if !ok {
		return &DomainError{Err: err}
	}
	return &DomainError{Err: err, Message: m.message, Code: m.code}
}

// Message возвращает текст для пользователя, если err доменная ошибка.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Error()
	}
	return err.Error()
}
