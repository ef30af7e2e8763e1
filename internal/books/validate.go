package books

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookshelf/pkg/models"
)

// payload is the write-side shape of a book. Fields are pointers so the
// check is key presence, not zero-ness: a present empty string or a
// present 0 passes. Unknown input fields are dropped by json decoding.
type payload struct {
	ISBN      *string `json:"isbn" validate:"required"`
	AmazonURL *string `json:"amazon_url" validate:"required"`
	Author    *string `json:"author" validate:"required"`
	Language  *string `json:"language" validate:"required"`
	Pages     *int    `json:"pages" validate:"required"`
	Publisher *string `json:"publisher" validate:"required"`
	Title     *string `json:"title" validate:"required"`
	Year      *int    `json:"year" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequired returns one message per missing field, in declaration
// order (isbn, amazon_url, author, language, pages, publisher, title,
// year). An empty slice means the payload is complete.
func checkRequired(p payload) []string {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("instance requires property %q", fe.Field()))
	}
	return msgs
}

func (p payload) book() models.Book {
	return models.Book{
		ISBN:      *p.ISBN,
		AmazonURL: *p.AmazonURL,
		Author:    *p.Author,
		Language:  *p.Language,
		Pages:     *p.Pages,
		Publisher: *p.Publisher,
		Title:     *p.Title,
		Year:      *p.Year,
	}
}
