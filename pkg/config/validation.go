package config

import (
	"errors"
	"fmt"
	"strings"

	"lintang/hospitalnav/pkg/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validate cek struct pakai validate tag. pesan error sudah di-translate ke bahasa inggris.
func Validate(v interface{}) error {
	validate := validator.New()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domain.WrapErrorf(err, domain.ErrBadParamInput, "invalid value")
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(validationErrs, trans)

	msgs := make([]string, len(vv))
	for i, e := range vv {
		msgs[i] = e.Error()
	}
	return domain.WrapErrorf(err, domain.ErrBadParamInput, "validation failed: %s", strings.Join(msgs, "; "))
}

func translateError(validatorErrs validator.ValidationErrors, trans ut.Translator) (errs []error) {
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
