package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator is the validator instance shared across the application.
var Validator *validator.Validate

// Trans translates validation errors into client-facing messages.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// Report field names by their JSON tag, not the Go struct field name.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}
}
