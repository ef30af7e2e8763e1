package books

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, raw string) payload {
	t.Helper()
	var p payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestCheckRequired_EmptyObject(t *testing.T) {
	p := decodePayload(t, `{}`)

	msgs := checkRequired(p)
	assert.Equal(t, []string{
		`instance requires property "isbn"`,
		`instance requires property "amazon_url"`,
		`instance requires property "author"`,
		`instance requires property "language"`,
		`instance requires property "pages"`,
		`instance requires property "publisher"`,
		`instance requires property "title"`,
		`instance requires property "year"`,
	}, msgs)
}

func TestCheckRequired_SingleMissingField(t *testing.T) {
	p := decodePayload(t, `{
		"isbn": "0691161518",
		"author": "Matthew Lane",
		"language": "english",
		"pages": 264,
		"publisher": "Princeton University Press",
		"title": "Power-Up",
		"year": 2017
	}`)

	msgs := checkRequired(p)
	assert.Equal(t, []string{`instance requires property "amazon_url"`}, msgs)
}

func TestCheckRequired_CompletePayload(t *testing.T) {
	p := decodePayload(t, `{
		"isbn": "0691161518",
		"amazon_url": "http://a.co/eobPtX2",
		"author": "Matthew Lane",
		"language": "english",
		"pages": 264,
		"publisher": "Princeton University Press",
		"title": "Power-Up",
		"year": 2017
	}`)

	assert.Empty(t, checkRequired(p))
}

func TestCheckRequired_PresentZeroValuesPass(t *testing.T) {
	// presence is what matters, not zero-ness
	p := decodePayload(t, `{
		"isbn": "",
		"amazon_url": "",
		"author": "",
		"language": "",
		"pages": 0,
		"publisher": "",
		"title": "",
		"year": 0
	}`)

	assert.Empty(t, checkRequired(p))
}

func TestCheckRequired_ExtraFieldsIgnored(t *testing.T) {
	p := decodePayload(t, `{
		"isbn": "0691161518",
		"amazon_url": "http://a.co/eobPtX2",
		"author": "Matthew Lane",
		"language": "english",
		"pages": 264,
		"publisher": "Princeton University Press",
		"title": "Power-Up",
		"year": 2017,
		"color": "purple",
		"rating": 5
	}`)

	assert.Empty(t, checkRequired(p))
}

func TestPayloadBook_DropsUnknownFields(t *testing.T) {
	p := decodePayload(t, `{
		"isbn": "0691161518",
		"amazon_url": "http://a.co/eobPtX2",
		"author": "Matthew Lane",
		"language": "english",
		"pages": 264,
		"publisher": "Princeton University Press",
		"title": "Power-Up",
		"year": 2017,
		"color": "purple"
	}`)

	b := p.book()
	assert.Equal(t, "0691161518", b.ISBN)
	assert.Equal(t, 264, b.Pages)
	assert.Equal(t, 2017, b.Year)

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "color")
}
