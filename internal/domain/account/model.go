package account

import (
	"strings"
	"unicode/utf8"
)

const (
	// NoID передается в Validate для еще не созданной учетной записи.
	NoID = 0

	MaxLoginLen    = 100
	MaxPasswordLen = 100
	MaxTagsLen     = 50

	tagSeparator = ";"
)

type Tag struct {
	Text string `json:"text" yaml:"text"`
}

type Data struct {
	Login      string     `json:"login" yaml:"login" validate:"required,max=100"`
	Password   *string    `json:"password" yaml:"password"`
	RecordType RecordType `json:"recordType" yaml:"recordType" validate:"required"`
	Tags       []Tag      `json:"tags" yaml:"tags"`
}

type Account struct {
	ID   int  `json:"id" yaml:"id"`
	Data Data `json:"data" yaml:"data"`
}

// Filter ограничивает выдачу List. Пустые поля не фильтруют.
type Filter struct {
	RecordType RecordType
	Tag        string
	Login      string
}

func (f Filter) match(a Account) bool {
	if f.RecordType != "" && a.Data.RecordType != f.RecordType {
		return false
	}
	if f.Login != "" && !strings.Contains(strings.ToLower(a.Data.Login), strings.ToLower(f.Login)) {
		return false
	}
	if f.Tag != "" && !a.Data.HasTag(f.Tag) {
		return false
	}
	return true
}

// Clone returns a deep copy so that callers never share the password
// pointer or the tags backing array with the store.
func (d Data) Clone() Data {
	out := Data{
		Login:      d.Login,
		RecordType: d.RecordType,
	}
	if d.Password != nil {
		p := *d.Password
		out.Password = &p
	}
	if d.Tags != nil {
		out.Tags = make([]Tag, len(d.Tags))
		copy(out.Tags, d.Tags)
	}
	return out
}

// Normalize drops the password of LDAP accounts and guarantees a non-nil tag list.
func (d Data) Normalize() Data {
	out := d.Clone()
	if out.RecordType == RecordTypeLDAP {
		out.Password = nil
	}
	if out.Tags == nil {
		out.Tags = []Tag{}
	}
	return out
}

func (d Data) HasTag(text string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t.Text, text) {
			return true
		}
	}
	return false
}

// PasswordValue возвращает пароль или пустую строку для null.
func (d Data) PasswordValue() string {
	if d.Password == nil {
		return ""
	}
	return *d.Password
}

func (a Account) Clone() Account {
	return Account{ID: a.ID, Data: a.Data.Clone()}
}

// ParseTags разбирает метку вида "a; b; c" в список тегов.
func ParseTags(label string) []Tag {
	parts := strings.Split(label, tagSeparator)
	tags := make([]Tag, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, Tag{Text: p})
	}
	return tags
}

// FormatTags собирает теги обратно в метку через "; ".
func FormatTags(tags []Tag) string {
	texts := make([]string, 0, len(tags))
	for _, t := range tags {
		texts = append(texts, t.Text)
	}
	return strings.Join(texts, tagSeparator+" ")
}

func tagsLen(tags []Tag) int {
	return utf8.RuneCountInString(FormatTags(tags))
}

// StringPtr is a convenience for building Data literals.
func StringPtr(s string) *string {
	return &s
}
