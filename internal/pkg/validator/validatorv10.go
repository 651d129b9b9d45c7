package validator

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/userdir/internal/pkg/strcase"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// Executor evaluates a Schema against input structs using
// go-playground/validator v10.
//
// The schema is compiled once at construction; the executor is then
// read-only and safe for concurrent use.
type Executor struct {
	validate   *validator.Validate
	translator ut.Translator
	index      map[string]map[string]Rule
}

// NewExecutor compiles schema for the struct type of prototype. Fallback
// texts come from the v10 English translations.
func NewExecutor(prototype any, schema Schema) (*Executor, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	validate.RegisterStructValidationMapRules(schema.MapRules(), prototype)

	return &Executor{
		validate:   validate,
		translator: enTrans,
		index:      schema.index(),
	}, nil
}

// Validate runs every schema constraint against data and collects the
// violations in schema order per field. A nil Violations result means valid.
// The error return signals executor misuse (non-struct input), not a
// constraint failure.
//
// v10 evaluates all fields independently; within one field it reports the
// first failing tag in declaration order. Length tags count runes with
// inclusive bounds, and an empty string fails required the same way an
// absent JSON field does.
func (e *Executor) Validate(data any) (Violations, error) {
	err := e.validate.Struct(data)
	if err == nil {
		return nil, nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return nil, err
	}

	violations := make(Violations, 0, len(validateErrs))
	for _, fe := range validateErrs {
		rule := e.index[fe.Field()][fe.Tag()]
		violations = append(violations, Violation{
			Field:     strcase.ToLowerSnake(fe.Field()),
			MessageID: rule.MessageID,
			Fallback:  fe.Translate(e.translator),
		})
	}

	return violations, nil
}
