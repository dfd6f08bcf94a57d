package locale

import (
	"testing"
	"time"

	"github.com/MKhiriev/harbor-admin/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		raw    string
		want   language.Tag
		wantOK bool
	}{
		{raw: "fr_FR.UTF-8", want: language.MustParse("fr-FR"), wantOK: true},
		{raw: "de-DE", want: language.MustParse("de-DE"), wantOK: true},
		{raw: "pt_BR", want: language.MustParse("pt-BR"), wantOK: true},
		{raw: "en_GB.UTF-8@euro", want: language.MustParse("en-GB"), wantOK: true},
		{raw: "C", want: language.Und},
		{raw: "POSIX", want: language.Und},
		{raw: "", want: language.Und},
		{raw: "not a locale", want: language.Und},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseTag(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFormatter_Match(t *testing.T) {
	assert.Equal(t, language.AmericanEnglish, NewFormatter("").Tag())
	assert.Equal(t, language.AmericanEnglish, NewFormatter("C.UTF-8").Tag())
	assert.Equal(t, language.AmericanEnglish, NewFormatter("en_US.UTF-8").Tag())
	assert.Equal(t, language.BritishEnglish, NewFormatter("en_GB.UTF-8").Tag())
	assert.Equal(t, language.German, NewFormatter("de_AT.UTF-8").Tag())
	assert.Equal(t, language.French, NewFormatter("fr-FR").Tag())
	assert.Equal(t, language.BrazilianPortuguese, NewFormatter("pt_BR").Tag())
}

func TestFormatter_Format(t *testing.T) {
	ts := models.NewTimestamp(time.Date(2023, 1, 1, 14, 5, 9, 0, time.UTC))

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en-US", want: "1/1/2023, 2:05:09 PM"},
		{locale: "en-GB", want: "01/01/2023, 14:05:09"},
		{locale: "de-DE", want: "1.1.2023, 14:05:09"},
		{locale: "fr-FR", want: "01/01/2023 14:05:09"},
		{locale: "ru-RU", want: "01.01.2023, 14:05:09"},
		{locale: "ja-JP", want: "2023/1/1 14:05:09"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f := NewFormatter(tt.locale).In(time.UTC)
			assert.Equal(t, tt.want, f.Format(ts))
		})
	}
}

func TestFormatter_LocalTime(t *testing.T) {
	ts := models.NewTimestamp(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	berlin := time.FixedZone("CET", 60*60)

	assert.Equal(t, "01/01/2023, 01:00:00", NewFormatter("en-GB").In(berlin).Format(ts))
}

func TestFormatter_ZeroIsPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, NewFormatter("en-US").Format(models.Timestamp{}))
}

func TestFormatter_UndecodableIsInvalidDate(t *testing.T) {
	assert.Equal(t, InvalidDate, NewFormatter("de").Format(models.Timestamp{Raw: "garbage"}))
}
